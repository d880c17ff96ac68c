package usecase

import (
	"io"

	"thriftbay/internal/infrastructure/auth"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Generate(id, userType, email, name string) (string, *auth.Claims, error)
}

// Upload is a file received from the client, already opened for reading.
type Upload struct {
	Reader      io.Reader
	ContentType string
	Size        int64
}
