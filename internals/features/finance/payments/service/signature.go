package service

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
)

// ComputeSignature builds the gateway notification signature:
// sha512(order_id + status_code + gross_amount + server_key).
func ComputeSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature checks a notification's signature_key in constant time.
func VerifySignature(orderID, statusCode, grossAmount, serverKey, signatureKey string) bool {
	expected := ComputeSignature(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) == 1
}
