package service

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the stored digests were created with.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest. CPU-bound; callers run on
// their own request goroutine so one slow hash never stalls other requests.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the stored digest.
// Malformed digests verify as false rather than erroring; bcrypt's comparison
// does not leak match position through timing.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
