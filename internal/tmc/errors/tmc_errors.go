package tmcerrors

import (
	"net/http"

	"github.com/darkhan2409/security-cost-calculator/internal/shared/apperror"
)

var (
	ErrTMCNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment item not found",
		http.StatusNotFound,
	)

	ErrTMCNameAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Equipment item with this name already exists",
		http.StatusConflict,
	)
)
