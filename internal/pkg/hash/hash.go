package hash

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost - coste de bcrypt por defecto
	DefaultCost = 12
)

// HashPassword genera el hash bcrypt de una contraseña
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compara un hash bcrypt con una contraseña en claro
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
