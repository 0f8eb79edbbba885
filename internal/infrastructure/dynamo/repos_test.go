package dynamo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/logistics-net-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockDB struct{ mock.Mock }

func (m *mockDB) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	args := m.Called(ctx, in)
	if out, _ := args.Get(0).(*dynamodb.PutItemOutput); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDB) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	args := m.Called(ctx, in)
	if out, _ := args.Get(0).(*dynamodb.GetItemOutput); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDB) DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	args := m.Called(ctx, in)
	if out, _ := args.Get(0).(*dynamodb.DeleteItemOutput); out != nil {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

var now = time.Unix(1_700_000_000, 0)

func otpItem(t *testing.T, code string, expiresAt int64) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(&domain.OTPRecord{Email: "a@x.com", Code: code, IssuedAt: now, ExpiresAt: expiresAt})
	require.NoError(t, err)
	return item
}

// --- OTPRepo ---

func TestOTPRepo_Put_Unconditional(t *testing.T) {
	db := &mockDB{}
	db.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return *in.TableName == "otps" && in.ConditionExpression == nil
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := NewOTPRepo(db, "otps").Put(context.Background(), &domain.OTPRecord{Email: "a@x.com", Code: "482913"})
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestOTPRepo_Consume_Success(t *testing.T) {
	db := &mockDB{}
	db.On("DeleteItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.DeleteItemInput) bool {
		code := in.ExpressionAttributeValues[":code"].(*types.AttributeValueMemberS).Value
		ts := in.ExpressionAttributeValues[":now"].(*types.AttributeValueMemberN).Value
		return code == "482913" && ts == "1700000000" &&
			in.ReturnValuesOnConditionCheckFailure == types.ReturnValuesOnConditionCheckFailureAllOld
	})).Return(&dynamodb.DeleteItemOutput{}, nil)

	require.NoError(t, NewOTPRepo(db, "otps").Consume(context.Background(), "a@x.com", "482913", now))
	db.AssertExpectations(t)
}

func TestOTPRepo_Consume_Absent(t *testing.T) {
	db := &mockDB{}
	db.On("DeleteItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{})

	err := NewOTPRepo(db, "otps").Consume(context.Background(), "a@x.com", "482913", now)
	assert.ErrorIs(t, err, domain.ErrOTPInvalidOrExpired)
	assert.NotErrorIs(t, err, domain.ErrOTPMismatch)
}

func TestOTPRepo_Consume_Mismatch(t *testing.T) {
	db := &mockDB{}
	db.On("DeleteItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Item: otpItem(t, "111111", now.Unix()+300)})

	err := NewOTPRepo(db, "otps").Consume(context.Background(), "a@x.com", "482913", now)
	assert.ErrorIs(t, err, domain.ErrOTPMismatch)
	assert.ErrorIs(t, err, domain.ErrOTPInvalidOrExpired)
}

func TestOTPRepo_Consume_ExpiredRecord(t *testing.T) {
	db := &mockDB{}
	db.On("DeleteItem", mock.Anything, mock.Anything).
		Return(nil, &types.ConditionalCheckFailedException{Item: otpItem(t, "482913", now.Unix()-1)})

	err := NewOTPRepo(db, "otps").Consume(context.Background(), "a@x.com", "482913", now)
	assert.ErrorIs(t, err, domain.ErrOTPInvalidOrExpired)
	assert.NotErrorIs(t, err, domain.ErrOTPMismatch)
}

func TestOTPRepo_Consume_StoreError(t *testing.T) {
	db := &mockDB{}
	boom := errors.New("connection reset")
	db.On("DeleteItem", mock.Anything, mock.Anything).Return(nil, boom)

	err := NewOTPRepo(db, "otps").Consume(context.Background(), "a@x.com", "482913", now)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

// --- AccountRepo ---

func TestAccountRepo_Create_Conditional(t *testing.T) {
	db := &mockDB{}
	db.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
		return in.ConditionExpression != nil && *in.ConditionExpression == "attribute_not_exists(#email)"
	})).Return(&dynamodb.PutItemOutput{}, nil)

	err := NewAccountRepo(db, "customers").Create(context.Background(), &domain.Account{
		AccountID: "01J", Email: "a@x.com", Variant: domain.VariantCustomer,
		Customer: &domain.CustomerProfile{FullName: "Jo"},
	})
	require.NoError(t, err)
	db.AssertExpectations(t)
}

func TestAccountRepo_Create_Duplicate(t *testing.T) {
	db := &mockDB{}
	db.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

	err := NewAccountRepo(db, "customers").Create(context.Background(), &domain.Account{Email: "a@x.com", Variant: domain.VariantCustomer})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestAccountRepo_GetByEmail_NotFound(t *testing.T) {
	db := &mockDB{}
	db.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

	_, err := NewAccountRepo(db, "startups").GetByEmail(context.Background(), "a@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepo_GetByEmail_Found(t *testing.T) {
	years := 3
	item, err := attributevalue.MarshalMap(&domain.Account{
		AccountID: "01J", Email: "a@x.com", PasswordHash: "hash", Variant: domain.VariantStartup,
		Startup: &domain.StartupProfile{CompanyName: "Acme", YearsInOperation: &years, FleetSize: "10", ServiceArea: "MP"},
	})
	require.NoError(t, err)
	db := &mockDB{}
	db.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

	a, err := NewAccountRepo(db, "startups").GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", a.PasswordHash)
	require.NotNil(t, a.Startup)
	assert.Equal(t, 3, *a.Startup.YearsInOperation)
}
