package calculationerrors

import (
	"net/http"

	"github.com/darkhan2409/security-cost-calculator/internal/shared/apperror"
)

var (
	ErrNoBillableHours = apperror.New(
		apperror.CodeInvalidState,
		"Calculation has no billable monthly hours",
		http.StatusUnprocessableEntity,
	)
)
