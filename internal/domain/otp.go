package domain

import "time"

// OTPRecord is the single pending passcode for an email.
// PK: email. ExpiresAt is a Unix timestamp used as DynamoDB TTL.
type OTPRecord struct {
	Email     string    `json:"email" dynamodbav:"email"`
	Code      string    `json:"code" dynamodbav:"code"`
	IssuedAt  time.Time `json:"issued_at" dynamodbav:"issued_at"`
	ExpiresAt int64     `json:"expires_at" dynamodbav:"expires_at"` // TTL (Unix seconds)
}

// LiveAt reports whether the record is still within its validity window at now.
func (r *OTPRecord) LiveAt(now time.Time) bool {
	return now.Unix() < r.ExpiresAt
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
