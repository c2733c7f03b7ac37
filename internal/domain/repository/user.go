package repository

import (
	"context"

	"github.com/tntx/fleetport/internal/domain/model"
)

// UserRepository describes persistence operations with portal accounts.
type UserRepository interface {
	Create(ctx context.Context, login, passwordHash string, role model.Role, companyID *int64) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
