package estimate_test

import (
	"context"
	"sync"
	"testing"

	"github.com/darkhan2409/security-cost-calculator/internal/calculation"
	"github.com/darkhan2409/security-cost-calculator/internal/estimate"
	estimateerrors "github.com/darkhan2409/security-cost-calculator/internal/estimate/errors"

	"github.com/stretchr/testify/assert"
)

type fakeCalculator struct {
	result calculation.CalculationResult
	err    error

	lastReq calculation.CalculationRequest
}

func (f *fakeCalculator) Calculate(
	ctx context.Context,
	req calculation.CalculationRequest,
) (calculation.CalculationResult, error) {
	f.lastReq = req
	if f.err != nil {
		return calculation.CalculationResult{}, f.err
	}
	return f.result, nil
}

func TestEstimateService_DraftLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := estimate.NewService(&fakeCalculator{})

	draft := svc.CreateDraft(ctx)
	assert.NotEmpty(t, draft.ID)
	assert.Empty(t, draft.Posts)
	assert.Equal(t, calculation.DefaultMarkupPercent, draft.MarkupPercent)

	fetched, err := svc.GetDraft(ctx, draft.ID)
	assert.NoError(t, err)
	assert.Equal(t, draft.ID, fetched.ID)

	assert.NoError(t, svc.DeleteDraft(ctx, draft.ID))

	_, err = svc.GetDraft(ctx, draft.ID)
	assert.ErrorIs(t, err, estimateerrors.ErrEstimateNotFound)
	assert.ErrorIs(t, svc.DeleteDraft(ctx, draft.ID), estimateerrors.ErrEstimateNotFound)
}

func TestEstimateService_Mutations(t *testing.T) {
	ctx := context.Background()
	svc := estimate.NewService(&fakeCalculator{})

	draft := svc.CreateDraft(ctx)

	resp, err := svc.AddPost(ctx, draft.ID)
	assert.NoError(t, err)
	assert.Len(t, resp.Posts, 1)
	assert.Equal(t, 1, resp.Posts[0].PostNumber)
	assert.Len(t, resp.Posts[0].Staff, 1)

	postID := resp.Posts[0].ID
	staffID := resp.Posts[0].Staff[0].ID

	resp, err = svc.UpdatePost(ctx, draft.ID, postID, estimate.UpdatePostRequest{
		HoursPerDay: 8,
		DaysPerWeek: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, 8, resp.Posts[0].HoursPerDay)
	assert.Equal(t, 5, resp.Posts[0].DaysPerWeek)

	resp, err = svc.UpdateStaff(ctx, draft.ID, postID, staffID, estimate.UpdateStaffRequest{
		Position:  "Guard",
		Count:     2,
		NetSalary: 150000,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Guard", resp.Posts[0].Staff[0].Position)

	resp, err = svc.SelectTMC(ctx, draft.ID, estimate.SelectTMCRequest{
		ItemID:   "item-a",
		Quantity: 3,
	})
	assert.NoError(t, err)
	assert.Len(t, resp.TMCSelections, 1)

	resp, err = svc.UnselectTMC(ctx, draft.ID, "item-a")
	assert.NoError(t, err)
	assert.Empty(t, resp.TMCSelections)

	markup := 30.0
	resp, err = svc.SetMarkup(ctx, draft.ID, estimate.SetMarkupRequest{MarkupPercent: &markup})
	assert.NoError(t, err)
	assert.Equal(t, 30.0, resp.MarkupPercent)

	resp, err = svc.RemovePost(ctx, draft.ID, postID)
	assert.NoError(t, err)
	assert.Empty(t, resp.Posts)

	_, err = svc.UpdatePost(ctx, "missing", postID, estimate.UpdatePostRequest{HoursPerDay: 8, DaysPerWeek: 5})
	assert.ErrorIs(t, err, estimateerrors.ErrEstimateNotFound)

	_, err = svc.RemovePost(ctx, draft.ID, postID)
	assert.ErrorIs(t, err, estimateerrors.ErrPostNotFound)
}

func TestEstimateService_Calculate(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates the serialized draft", func(t *testing.T) {
		calc := &fakeCalculator{
			result: calculation.CalculationResult{
				Summary: calculation.Summary{FinalPrice: 360000},
			},
		}
		svc := estimate.NewService(calc)

		draft := svc.CreateDraft(ctx)
		resp, err := svc.AddPost(ctx, draft.ID)
		assert.NoError(t, err)

		postID := resp.Posts[0].ID
		staffID := resp.Posts[0].Staff[0].ID
		_, err = svc.UpdateStaff(ctx, draft.ID, postID, staffID, estimate.UpdateStaffRequest{
			Position:  "Guard",
			Count:     2,
			NetSalary: 150000,
		})
		assert.NoError(t, err)

		result, err := svc.Calculate(ctx, draft.ID)
		assert.NoError(t, err)
		assert.Equal(t, 360000.0, result.Summary.FinalPrice)

		assert.Len(t, calc.lastReq.Posts, 1)
		assert.Equal(t, 1, calc.lastReq.Posts[0].PostNumber)
		assert.Equal(t, "Guard", calc.lastReq.Posts[0].Staff[0].Position)
	})

	t.Run("rejects a draft with no valid posts", func(t *testing.T) {
		calc := &fakeCalculator{}
		svc := estimate.NewService(calc)

		draft := svc.CreateDraft(ctx)
		_, err := svc.Calculate(ctx, draft.ID)
		assert.ErrorIs(t, err, estimateerrors.ErrNoValidPosts)
		assert.Empty(t, calc.lastReq.Posts, "calculator never called")
	})

	t.Run("unknown draft", func(t *testing.T) {
		svc := estimate.NewService(&fakeCalculator{})
		_, err := svc.Calculate(ctx, "missing")
		assert.ErrorIs(t, err, estimateerrors.ErrEstimateNotFound)
	})
}

func TestEstimateService_ConcurrentMutateAndCalculate(t *testing.T) {
	ctx := context.Background()
	calc := &fakeCalculator{
		result: calculation.CalculationResult{
			Summary: calculation.Summary{FinalPrice: 360000},
		},
	}
	svc := estimate.NewService(calc)

	draft := svc.CreateDraft(ctx)
	resp, err := svc.AddPost(ctx, draft.ID)
	assert.NoError(t, err)
	postID := resp.Posts[0].ID
	staffID := resp.Posts[0].Staff[0].ID
	_, err = svc.UpdateStaff(ctx, draft.ID, postID, staffID,
		estimate.UpdateStaffRequest{Position: "Guard", Count: 1, NetSalary: 150000})
	assert.NoError(t, err)

	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(3)

	// Writer rewriting the same staff group
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_, _ = svc.UpdateStaff(ctx, draft.ID, postID, staffID, estimate.UpdateStaffRequest{
				Position:  "Guard",
				Count:     1 + i%3,
				NetSalary: 150000 + float64(i),
			})
		}
	}()

	// Writer growing and shrinking the post slice
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			added, err := svc.AddPost(ctx, draft.ID)
			if err != nil {
				continue
			}
			extraID := added.Posts[len(added.Posts)-1].ID
			_, _ = svc.RemovePost(ctx, draft.ID, extraID)
		}
	}()

	// Reader serializing the draft while the writers run
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			if _, err := svc.Calculate(ctx, draft.ID); err != nil {
				assert.ErrorIs(t, err, estimateerrors.ErrNoValidPosts)
			}
		}
	}()

	wg.Wait()

	// The permanently staffed post survives every interleaving
	final, err := svc.GetDraft(ctx, draft.ID)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, len(final.Posts), 1)
}

func TestEstimateService_ConcurrentDrafts(t *testing.T) {
	ctx := context.Background()
	svc := estimate.NewService(&fakeCalculator{})

	const workers = 16

	var wg sync.WaitGroup
	ids := make([]string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			draft := svc.CreateDraft(ctx)
			ids[i] = draft.ID

			resp, err := svc.AddPost(ctx, draft.ID)
			assert.NoError(t, err)
			_, err = svc.UpdateStaff(ctx, draft.ID, resp.Posts[0].ID, resp.Posts[0].Staff[0].ID,
				estimate.UpdateStaffRequest{Position: "Guard", Count: 1, NetSalary: 150000})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// Every draft is independent: one post each, never cross-written
	for _, id := range ids {
		resp, err := svc.GetDraft(ctx, id)
		assert.NoError(t, err)
		assert.Len(t, resp.Posts, 1)
	}
}
