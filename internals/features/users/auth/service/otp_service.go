package service

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"

	"gorm.io/gorm"

	authModel "campushub_backend/internals/features/users/auth/model"
)

const OtpTTL = 5 * time.Minute

var (
	ErrOtpNotFound = errors.New("no code issued for this email")
	ErrOtpExpired  = errors.New("code has expired")
	ErrOtpMismatch = errors.New("code does not match")
)

// GenerateOtpCode returns a 6-digit numeric code from crypto/rand.
func GenerateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	code := n.Int64()
	digits := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + code%10)
		code /= 10
	}
	return string(digits), nil
}

// ValidateOtp checks a submitted code against the most recently issued one.
// Pure so the expiry/mismatch rules are testable without a DB.
func ValidateOtp(latest *authModel.OtpModel, submitted string, now time.Time) error {
	if latest == nil {
		return ErrOtpNotFound
	}
	if now.After(latest.ExpiresAt) {
		return ErrOtpExpired
	}
	if latest.Code != submitted {
		return ErrOtpMismatch
	}
	return nil
}

// IssueOtp stores a fresh code for the email and returns it.
func IssueOtp(db *gorm.DB, email string) (*authModel.OtpModel, error) {
	code, err := GenerateOtpCode()
	if err != nil {
		return nil, err
	}
	otp := &authModel.OtpModel{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(OtpTTL),
	}
	if err := db.Create(otp).Error; err != nil {
		return nil, err
	}
	return otp, nil
}

// LatestOtp fetches the most recently issued code for an email.
func LatestOtp(db *gorm.DB, email string) (*authModel.OtpModel, error) {
	var otp authModel.OtpModel
	err := db.Where("email = ?", email).
		Order("created_at DESC").
		First(&otp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &otp, nil
}
