package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Callback verification. The gateway signs `orderID|paymentID` with the
// server key; we recompute and compare in constant time. Any mutation of
// the supplied signature must fail.

func ComputeSignature(orderID, paymentID, serverKey string) string {
	m := hmac.New(sha256.New, []byte(serverKey))
	m.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(m.Sum(nil))
}

func VerifySignature(orderID, paymentID, supplied, serverKey string) bool {
	expected := ComputeSignature(orderID, paymentID, serverKey)
	return hmac.Equal([]byte(expected), []byte(supplied))
}
