package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken menghasilkan token acak hex sepanjang 64 karakter,
// dipakai untuk konfirmasi email dan reset password.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
