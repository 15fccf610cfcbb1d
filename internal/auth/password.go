package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt hash. A fresh salt is drawn on every
// call, so hashing the same plaintext twice yields different outputs.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches the stored hash. A mismatch is
// false, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
