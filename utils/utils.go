package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const otpDigits = 6

// GenerateOTP generates a 6-digit OTP
func GenerateOTP() (string, error) {
	var b strings.Builder
	b.Grow(otpDigits)
	for i := 0; i < otpDigits; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}
