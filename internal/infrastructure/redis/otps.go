package redisinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logistics-net-api/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// consumeScript deletes the hash only when the code matches and the record
// is still live at ARGV[2]. Returns 1 on delete, 0 when absent or expired,
// -1 on a live mismatch.
var consumeScript = redis.NewScript(`
local rec = redis.call("HMGET", KEYS[1], "code", "expires_at")
if not rec[1] then
  return 0
end
if tonumber(rec[2]) <= tonumber(ARGV[2]) then
  return 0
end
if rec[1] ~= ARGV[1] then
  return -1
end
redis.call("DEL", KEYS[1])
return 1
`)

// OTPStore keeps one hash per email with a key-level expiry at expires_at.
type OTPStore struct {
	client redis.Cmdable
}

func NewOTPStore(client redis.Cmdable) *OTPStore {
	return &OTPStore{client: client}
}

func otpKey(email string) string { return keyPrefix + email }

// Put replaces the hash and its expiry in one MULTI/EXEC.
func (s *OTPStore) Put(ctx context.Context, rec *domain.OTPRecord) error {
	key := otpKey(rec.Email)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		p.HSet(ctx, key,
			"code", rec.Code,
			"issued_at", rec.IssuedAt.Unix(),
			"expires_at", rec.ExpiresAt,
		)
		p.ExpireAt(ctx, key, time.Unix(rec.ExpiresAt, 0))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put otp: %w", err)
	}
	return nil
}

// Consume runs the compare-and-delete script atomically on the server.
func (s *OTPStore) Consume(ctx context.Context, email, code string, now time.Time) error {
	n, err := consumeScript.Run(ctx, s.client, []string{otpKey(email)}, code, now.Unix()).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis consume otp: %w", err)
	}
	switch n {
	case 1:
		return nil
	case -1:
		return domain.ErrOTPMismatch
	default:
		return domain.ErrOTPInvalidOrExpired
	}
}
