package estimate

import (
	"context"
	"sync"

	"github.com/darkhan2409/security-cost-calculator/internal/calculation"
	estimateerrors "github.com/darkhan2409/security-cost-calculator/internal/estimate/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=estimate_service.go -destination=mock/estimate_service_mock.go -package=mock
type Service interface {
	CreateDraft(ctx context.Context) DraftResponse
	GetDraft(ctx context.Context, id string) (DraftResponse, error)
	DeleteDraft(ctx context.Context, id string) error
	AddPost(ctx context.Context, id string) (DraftResponse, error)
	UpdatePost(ctx context.Context, id string, postID int, req UpdatePostRequest) (DraftResponse, error)
	RemovePost(ctx context.Context, id string, postID int) (DraftResponse, error)
	AddStaff(ctx context.Context, id string, postID int) (DraftResponse, error)
	UpdateStaff(ctx context.Context, id string, postID, staffID int, req UpdateStaffRequest) (DraftResponse, error)
	RemoveStaff(ctx context.Context, id string, postID, staffID int) (DraftResponse, error)
	SelectTMC(ctx context.Context, id string, req SelectTMCRequest) (DraftResponse, error)
	UnselectTMC(ctx context.Context, id string, itemID string) (DraftResponse, error)
	SetMarkup(ctx context.Context, id string, req SetMarkupRequest) (DraftResponse, error)
	Calculate(ctx context.Context, id string) (calculation.CalculationResult, error)
}

type service struct {
	mu         sync.RWMutex
	drafts     map[string]*FormModel
	calculator calculation.Service
}

func NewService(calculator calculation.Service) Service {
	return &service{
		drafts:     make(map[string]*FormModel),
		calculator: calculator,
	}
}

func (s *service) CreateDraft(ctx context.Context) DraftResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.drafts[id] = NewFormModel()
	return mapToDraftResponse(id, s.drafts[id])
}

func (s *service) GetDraft(ctx context.Context, id string) (DraftResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	model, ok := s.drafts[id]
	if !ok {
		return DraftResponse{}, estimateerrors.ErrEstimateNotFound
	}
	return mapToDraftResponse(id, model), nil
}

func (s *service) DeleteDraft(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return estimateerrors.ErrEstimateNotFound
	}
	delete(s.drafts, id)
	return nil
}

func (s *service) AddPost(ctx context.Context, id string) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		m.AddPost()
		return nil
	})
}

func (s *service) UpdatePost(ctx context.Context, id string, postID int, req UpdatePostRequest) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		return m.UpdatePost(postID, req.HoursPerDay, req.DaysPerWeek)
	})
}

func (s *service) RemovePost(ctx context.Context, id string, postID int) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		return m.RemovePost(postID)
	})
}

func (s *service) AddStaff(ctx context.Context, id string, postID int) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		_, err := m.AddStaff(postID)
		return err
	})
}

func (s *service) UpdateStaff(ctx context.Context, id string, postID, staffID int, req UpdateStaffRequest) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		return m.UpdateStaff(postID, staffID, req.Position, req.Count, req.NetSalary)
	})
}

func (s *service) RemoveStaff(ctx context.Context, id string, postID, staffID int) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		return m.RemoveStaff(postID, staffID)
	})
}

func (s *service) SelectTMC(ctx context.Context, id string, req SelectTMCRequest) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		m.SelectTMC(req.ItemID, req.Quantity)
		return nil
	})
}

func (s *service) UnselectTMC(ctx context.Context, id string, itemID string) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		return m.UnselectTMC(itemID)
	})
}

func (s *service) SetMarkup(ctx context.Context, id string, req SetMarkupRequest) (DraftResponse, error) {
	return s.mutate(id, func(m *FormModel) error {
		m.SetMarkup(*req.MarkupPercent)
		return nil
	})
}

// Calculate serializes the draft and delegates to the calculator.
// Serialization failures reject the draft before anything is resolved,
// and the draft itself is left untouched either way. Serialize reads
// the post and staff slices, so it must run under the read lock;
// only the calculator call happens outside it.
func (s *service) Calculate(ctx context.Context, id string) (calculation.CalculationResult, error) {
	s.mu.RLock()
	model, ok := s.drafts[id]
	if !ok {
		s.mu.RUnlock()
		return calculation.CalculationResult{}, estimateerrors.ErrEstimateNotFound
	}

	req, err := model.Serialize()
	s.mu.RUnlock()

	if err != nil {
		return calculation.CalculationResult{}, err
	}

	return s.calculator.Calculate(ctx, req)
}

func (s *service) mutate(id string, fn func(m *FormModel) error) (DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	model, ok := s.drafts[id]
	if !ok {
		return DraftResponse{}, estimateerrors.ErrEstimateNotFound
	}

	if err := fn(model); err != nil {
		return DraftResponse{}, err
	}

	return mapToDraftResponse(id, model), nil
}

func mapToDraftResponse(id string, model *FormModel) DraftResponse {
	posts := make([]PostView, 0, len(model.Posts()))
	for i, post := range model.Posts() {
		staff := make([]StaffGroupView, 0, len(post.Staff))
		for _, group := range post.Staff {
			staff = append(staff, StaffGroupView{
				ID:        group.ID,
				Position:  group.Position,
				Count:     group.Count,
				NetSalary: group.NetSalary,
			})
		}

		posts = append(posts, PostView{
			ID:          post.ID,
			PostNumber:  i + 1,
			HoursPerDay: post.HoursPerDay,
			DaysPerWeek: post.DaysPerWeek,
			Staff:       staff,
		})
	}

	selections := make([]TMCSelectionView, 0, len(model.Selections()))
	for _, sel := range model.Selections() {
		selections = append(selections, TMCSelectionView{
			ItemID:   sel.ItemID,
			Quantity: sel.Quantity,
		})
	}

	return DraftResponse{
		ID:            id,
		Posts:         posts,
		TMCSelections: selections,
		MarkupPercent: model.MarkupPercent(),
	}
}
