package tmc

import (
	"errors"
	"strings"

	tmcerrors "github.com/darkhan2409/security-cost-calculator/internal/tmc/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tmcerrors.ErrTMCNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_tmc_name" {
			return tmcerrors.ErrTMCNameAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_tmc_name") {
		return tmcerrors.ErrTMCNameAlreadyExists
	}

	return err
}
