package auth

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies signed bearer tokens. A token asserts
// (user id, email, expiry); validity is purely a function of signature and
// expiry, nothing is stored server-side.
type Strategy interface {
	IssueToken(userID int64, email string) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
