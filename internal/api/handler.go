package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thibautrey/PebbleShopApp/internal/domain/dto"
	"github.com/thibautrey/PebbleShopApp/internal/domain/models"
	"github.com/thibautrey/PebbleShopApp/internal/service"
)

// Handler provides the HTTP bridge for the watch transport.
//
// Responsibilities:
//   - Decode inbound period requests (tolerantly: the watch contract
//     defaults to daily on anything invalid)
//   - Run the sales orchestrator
//   - Translate the decided outcome into the fixed watch message shape
type Handler struct {
	svc service.SalesService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.SalesService) *Handler {
	return &Handler{svc: svc}
}

// GetSales handles POST /api/v1/sales requests.
//
// The response always carries HTTP 200 with a definitive in-band status:
// the watch renders `status` ("ok"/"error"), never the HTTP code. A
// malformed or missing body degrades to period 0 (daily) by contract.
//
// GetSales godoc
// @Summary      Get sales total for a period
// @Description  Returns the store's sales total for today/this week/this month, from cache or a fresh Shopify fetch
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SalesRequest  false  "Period selector (0=daily, 1=weekly, 2=monthly)"
// @Success      200      {object}  dto.SalesMessage  "Decided outcome (status ok or error)"
// @Router       /api/v1/sales [post]
func (h *Handler) GetSales(c *gin.Context) {
	// ─── Decode period (default 0 on anything invalid) ────────
	var req dto.SalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Period = 0
	}
	period := models.ParsePeriod(req.Period)

	// ─── Run the orchestrator: exactly one outcome ────────────
	result, err := h.svc.GetSales(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusOK, dto.NewSalesError(int(period), err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSalesOK(int(period), result.Total, result.Currency))
}
