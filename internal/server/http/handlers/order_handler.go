package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tntx/fleetport/internal/domain/errors"
)

// OrderHandler serves aggregated Trimble repair orders.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/trimble/repair-orders.
func (h *OrderHandler) List(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	orders, err := h.facade.RepairOrders(c.Request.Context(), user, c.Query("fromDate"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch repair orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/trimble/repair-orders/:orderId.
func (h *OrderHandler) Get(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.Status(http.StatusUnauthorized)
		return
	}

	order, err := h.facade.RepairOrder(c.Request.Context(), user, c.Param("orderId"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "repair order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch repair orders"})
		return
	}
	c.JSON(http.StatusOK, order)
}
