package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

const (
	otpMin   = 100000
	otpRange = 900000
)

// NewOTP returns a uniformly random six-digit code in [100000, 999999].
// The lower bound keeps every code exactly six digits without zero padding.
func NewOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
