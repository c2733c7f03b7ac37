package repository

import (
	"context"

	"github.com/tntx/fleetport/internal/domain/model"
)

// CompanyRepository describes persistence operations with companies.
type CompanyRepository interface {
	Create(ctx context.Context, name, trimbleCode, address string) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	// ListByTrimbleCodes returns companies whose trimble_code matches any of the
	// provided codes, compared case-insensitively.
	ListByTrimbleCodes(ctx context.Context, codes []string) ([]model.Company, error)
}
