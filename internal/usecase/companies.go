package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/domain/repository"
)

// CompanyUseCase manages the customer company directory.
type CompanyUseCase struct {
	companies repository.CompanyRepository
}

// NewCompanyUseCase constructs CompanyUseCase.
func NewCompanyUseCase(companies repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies}
}

// CompanyInput carries fields for registering a company.
type CompanyInput struct {
	Name        string
	TrimbleCode string
	Address     string
}

// Create registers a company. Admin only.
func (u *CompanyUseCase) Create(ctx context.Context, user *model.User, in CompanyInput) (*model.Company, error) {
	if user.Role != model.RoleAdmin {
		return nil, domainErrors.ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	in.TrimbleCode = strings.ToUpper(strings.TrimSpace(in.TrimbleCode))
	if in.Name == "" || in.TrimbleCode == "" {
		return nil, fmt.Errorf("company: name and trimble code are required")
	}
	return u.companies.Create(ctx, in.Name, in.TrimbleCode, strings.TrimSpace(in.Address))
}

// List returns all registered companies.
func (u *CompanyUseCase) List(ctx context.Context) ([]model.Company, error) {
	return u.companies.List(ctx)
}
