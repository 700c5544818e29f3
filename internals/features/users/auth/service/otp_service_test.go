package service

import (
	"testing"
	"time"

	authModel "campushub_backend/internals/features/users/auth/model"
)

func TestGenerateOtpCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := GenerateOtpCode()
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit %q", code, r)
			}
		}
	}
}

func TestValidateOtp(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	fresh := &authModel.OtpModel{Code: "123456", ExpiresAt: now.Add(OtpTTL)}

	if err := ValidateOtp(fresh, "123456", now); err != nil {
		t.Errorf("valid code rejected: %v", err)
	}
	if err := ValidateOtp(nil, "123456", now); err != ErrOtpNotFound {
		t.Errorf("nil otp: got %v, want ErrOtpNotFound", err)
	}
	if err := ValidateOtp(fresh, "654321", now); err != ErrOtpMismatch {
		t.Errorf("wrong code: got %v, want ErrOtpMismatch", err)
	}

	expired := &authModel.OtpModel{Code: "123456", ExpiresAt: now.Add(-time.Second)}
	if err := ValidateOtp(expired, "123456", now); err != ErrOtpExpired {
		t.Errorf("expired code: got %v, want ErrOtpExpired", err)
	}

	// Exactly at the expiry instant still validates.
	edge := &authModel.OtpModel{Code: "123456", ExpiresAt: now}
	if err := ValidateOtp(edge, "123456", now); err != nil {
		t.Errorf("code at expiry instant rejected: %v", err)
	}
}
