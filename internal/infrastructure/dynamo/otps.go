package dynamo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/logistics-net-api/internal/domain"
)

// OTPRepo is the DynamoDB-backed OTP ledger.
// PK: email. The table's TTL on expires_at purges stale codes eventually;
// consumes also compare expires_at against the caller's clock.
type OTPRepo struct {
	client    DB
	tableName string
}

func NewOTPRepo(client DB, tableName string) *OTPRepo {
	return &OTPRepo{client: client, tableName: tableName}
}

// Put writes the record, replacing any existing code for the same email.
func (r *OTPRepo) Put(ctx context.Context, rec *domain.OTPRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal otp: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// Consume deletes the record only if it holds code and has not expired at now.
// Match and delete happen in one conditional DeleteItem, so two concurrent
// consumers of the same code cannot both succeed.
func (r *OTPRepo) Consume(ctx context.Context, email, code string, now time.Time) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey(attrEmail, email),
		ConditionExpression: aws.String("#code = :code AND #exp > :now"),
		ExpressionAttributeNames: map[string]string{
			"#code": attrCode,
			"#exp":  attrExpiresAt,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
			":now":  &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err == nil {
		return nil
	}
	ccf, ok := conditionFailed(err)
	if !ok {
		return err
	}
	if ccf.Item == nil {
		return domain.ErrOTPInvalidOrExpired
	}
	var rec domain.OTPRecord
	if err := attributevalue.UnmarshalMap(ccf.Item, &rec); err != nil {
		return fmt.Errorf("unmarshal otp: %w", err)
	}
	if !rec.LiveAt(now) {
		return domain.ErrOTPInvalidOrExpired
	}
	return domain.ErrOTPMismatch
}
