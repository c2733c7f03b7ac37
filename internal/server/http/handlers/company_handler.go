package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
	"github.com/tntx/fleetport/internal/server/http/dto"
)

// CompanyHandler serves the customer company directory.
type CompanyHandler struct {
	facade CompanyFacade
}

// NewCompanyHandler creates CompanyHandler instance.
func NewCompanyHandler(facade CompanyFacade) *CompanyHandler {
	return &CompanyHandler{facade: facade}
}

// Create handles POST /api/companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	company, err := h.facade.CreateCompany(c.Request.Context(), user, req.Name, req.TrimbleCode, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrForbidden):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, company)
}

// List handles GET /api/companies.
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.facade.Companies(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, companies)
}
