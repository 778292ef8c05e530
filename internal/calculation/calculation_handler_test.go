package calculation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkhan2409/security-cost-calculator/internal/calculation"
	"github.com/darkhan2409/security-cost-calculator/internal/shared/apperror"
	tmcerrors "github.com/darkhan2409/security-cost-calculator/internal/tmc/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCalculationService struct {
	result calculation.CalculationResult
	err    error

	lastReq calculation.CalculationRequest
}

func (f *fakeCalculationService) Calculate(
	ctx context.Context,
	req calculation.CalculationRequest,
) (calculation.CalculationResult, error) {
	f.lastReq = req
	if f.err != nil {
		return calculation.CalculationResult{}, f.err
	}
	return f.result, nil
}

type errorEnvelope struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func performCalculate(t *testing.T, svc calculation.Service, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	handler := calculation.NewHandler(svc)
	r.POST("/calculate", handler.Calculate)

	req := httptest.NewRequest(http.MethodPost, "/calculate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	return w
}

func TestCalculationHandler_Calculate(t *testing.T) {
	apperror.Init()

	validBody := gin.H{
		"posts": []gin.H{
			{
				"post_number":   1,
				"hours_per_day": 12,
				"days_per_week": 7,
				"staff": []gin.H{
					{"position": "Guard", "count": 2, "net_salary": 150000},
				},
			},
		},
	}

	t.Run("success", func(t *testing.T) {
		svc := &fakeCalculationService{
			result: calculation.CalculationResult{
				Summary: calculation.Summary{FinalPrice: 360000},
			},
		}

		w := performCalculate(t, svc, validBody)
		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Ok   bool                          `json:"ok"`
			Data calculation.CalculationResult `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Equal(t, 360000.0, envelope.Data.Summary.FinalPrice)

		assert.Len(t, svc.lastReq.Posts, 1)
		assert.Equal(t, 12, svc.lastReq.Posts[0].HoursPerDay)
	})

	t.Run("missing posts rejected before the service", func(t *testing.T) {
		svc := &fakeCalculationService{}

		w := performCalculate(t, svc, gin.H{"posts": []gin.H{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope errorEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.Equal(t, apperror.CodeInvalidInput, envelope.Error.Code)
	})

	t.Run("hours out of range rejected", func(t *testing.T) {
		svc := &fakeCalculationService{}

		body := gin.H{
			"posts": []gin.H{
				{
					"post_number":   1,
					"hours_per_day": 25,
					"days_per_week": 7,
					"staff": []gin.H{
						{"position": "Guard", "count": 1, "net_salary": 150000},
					},
				},
			},
		}

		w := performCalculate(t, svc, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed equipment id rejected at binding", func(t *testing.T) {
		svc := &fakeCalculationService{}

		body := gin.H{
			"posts": []gin.H{
				{
					"post_number":   1,
					"hours_per_day": 12,
					"days_per_week": 7,
					"staff": []gin.H{
						{"position": "Guard", "count": 2, "net_salary": 150000},
					},
				},
			},
			"tmc_items": []gin.H{
				{"item_id": "not-a-uuid", "quantity": 1},
			},
		}

		w := performCalculate(t, svc, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown equipment maps to 404", func(t *testing.T) {
		svc := &fakeCalculationService{err: tmcerrors.ErrTMCNotFound}

		w := performCalculate(t, svc, validBody)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var envelope errorEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, apperror.CodeNotFound, envelope.Error.Code)
	})
}
