package service

import (
	"strings"
	"testing"
)

func TestVerifySignatureRoundTrip(t *testing.T) {
	const key = "test-server-key"
	sig := ComputeSignature("ORD-123", "PAY-456", key)

	if !VerifySignature("ORD-123", "PAY-456", sig, key) {
		t.Fatal("valid signature rejected")
	}
	if VerifySignature("ORD-124", "PAY-456", sig, key) {
		t.Error("signature accepted for a different order id")
	}
	if VerifySignature("ORD-123", "PAY-457", sig, key) {
		t.Error("signature accepted for a different payment id")
	}
	if VerifySignature("ORD-123", "PAY-456", sig, "other-key") {
		t.Error("signature accepted under a different key")
	}
}

// Any single-character mutation of the signature must cause rejection.
func TestVerifySignatureSingleCharMutation(t *testing.T) {
	const key = "test-server-key"
	sig := ComputeSignature("ORD-abc", "PAY-def", key)

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'f' {
			mutated[i] = '0'
		} else {
			mutated[i] = 'f'
		}
		if string(mutated) == sig {
			continue
		}
		if VerifySignature("ORD-abc", "PAY-def", string(mutated), key) {
			t.Fatalf("mutated signature accepted at position %d", i)
		}
	}
}

func TestVerifySignatureRejectsJunk(t *testing.T) {
	const key = "k"
	cases := []string{"", "short", strings.Repeat("z", 64)}
	for _, sig := range cases {
		if VerifySignature("o", "p", sig, key) {
			t.Errorf("junk signature %q accepted", sig)
		}
	}
}

// The signed payload is orderID|paymentID — boundary shifts must not collide.
func TestSignaturePayloadBoundary(t *testing.T) {
	const key = "k"
	a := ComputeSignature("AB", "C", key)
	b := ComputeSignature("A", "BC", key)
	if a == b {
		t.Error("orderID|paymentID boundary is ambiguous")
	}
}
