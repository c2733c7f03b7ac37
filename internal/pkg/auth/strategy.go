package auth

import (
	"time"

	"github.com/tntx/fleetport/internal/domain/model"
)

// Claims is the identity carried by an auth token: who the user is and what
// role they act in. The credential service contract is verify token → claims.
type Claims struct {
	UserID int64
	Role   model.Role
}

type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
