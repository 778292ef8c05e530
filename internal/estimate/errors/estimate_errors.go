package estimateerrors

import (
	"net/http"

	"github.com/darkhan2409/security-cost-calculator/internal/shared/apperror"
)

var (
	ErrEstimateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Draft estimate not found",
		http.StatusNotFound,
	)

	ErrPostNotFound = apperror.New(
		apperror.CodeNotFound,
		"Post not found in this draft",
		http.StatusNotFound,
	)

	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff group not found in this post",
		http.StatusNotFound,
	)

	ErrSelectionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Equipment item is not selected in this draft",
		http.StatusNotFound,
	)

	ErrNoValidPosts = apperror.New(
		apperror.CodeInvalidState,
		"Draft has no post with valid staff entries",
		http.StatusUnprocessableEntity,
	)
)
