package salary

import (
	"net/http"

	"github.com/darkhan2409/security-cost-calculator/internal/shared/apperror"
	"github.com/darkhan2409/security-cost-calculator/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Breakdown(c *gin.Context) {
	var req BreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	hasDeduction := true
	if req.HasDeduction != nil {
		hasDeduction = *req.HasDeduction
	}

	breakdown, err := Breakdown(req.NetSalary, hasDeduction)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, breakdown, nil)
}
