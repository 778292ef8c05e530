// Package estimate holds draft estimates while a user assembles posts,
// staff groups and equipment selections. Drafts live in memory only
// and are discarded on restart; submission goes through Serialize.
package estimate

import (
	estimateerrors "github.com/darkhan2409/security-cost-calculator/internal/estimate/errors"

	"github.com/darkhan2409/security-cost-calculator/internal/calculation"
)

const (
	defaultHoursPerDay = 12
	defaultDaysPerWeek = 7
)

type StaffGroup struct {
	ID        int
	Position  string
	Count     int
	NetSalary float64
}

// Valid reports whether the group counts toward submission.
func (g StaffGroup) Valid() bool {
	return g.Position != "" && g.Count > 0 && g.NetSalary > 0
}

type Post struct {
	ID          int
	HoursPerDay int
	DaysPerWeek int
	Staff       []StaffGroup
}

type TMCSelection struct {
	ItemID   string
	Quantity int
}

// FormModel is one draft estimate. Post and staff ids come from
// counters scoped to the instance, never shared process-wide. Display
// numbering is derived from position, so it can never drift.
type FormModel struct {
	posts       []*Post
	selections  []TMCSelection
	markup      *float64
	nextPostID  int
	nextStaffID int
}

func NewFormModel() *FormModel {
	return &FormModel{}
}

func (m *FormModel) Posts() []*Post {
	return m.posts
}

func (m *FormModel) Selections() []TMCSelection {
	return m.selections
}

func (m *FormModel) MarkupPercent() float64 {
	if m.markup != nil {
		return *m.markup
	}
	return calculation.DefaultMarkupPercent
}

// PostNumber returns the 1-based display number of a post, or 0 if
// the post is not part of this draft.
func (m *FormModel) PostNumber(postID int) int {
	for i, p := range m.posts {
		if p.ID == postID {
			return i + 1
		}
	}
	return 0
}

// AddPost appends a post with a default schedule and one empty staff
// group at the next display position.
func (m *FormModel) AddPost() *Post {
	m.nextPostID++
	m.nextStaffID++

	post := &Post{
		ID:          m.nextPostID,
		HoursPerDay: defaultHoursPerDay,
		DaysPerWeek: defaultDaysPerWeek,
		Staff:       []StaffGroup{{ID: m.nextStaffID}},
	}
	m.posts = append(m.posts, post)
	return post
}

func (m *FormModel) Post(postID int) (*Post, error) {
	for _, p := range m.posts {
		if p.ID == postID {
			return p, nil
		}
	}
	return nil, estimateerrors.ErrPostNotFound
}

// RemovePost deletes a post; the remaining posts keep their order, so
// display numbers stay contiguous starting at 1.
func (m *FormModel) RemovePost(postID int) error {
	for i, p := range m.posts {
		if p.ID == postID {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return estimateerrors.ErrPostNotFound
}

func (m *FormModel) UpdatePost(postID, hoursPerDay, daysPerWeek int) error {
	post, err := m.Post(postID)
	if err != nil {
		return err
	}

	post.HoursPerDay = hoursPerDay
	post.DaysPerWeek = daysPerWeek
	return nil
}

func (m *FormModel) AddStaff(postID int) (*StaffGroup, error) {
	post, err := m.Post(postID)
	if err != nil {
		return nil, err
	}

	m.nextStaffID++
	post.Staff = append(post.Staff, StaffGroup{ID: m.nextStaffID})
	return &post.Staff[len(post.Staff)-1], nil
}

func (m *FormModel) UpdateStaff(postID, staffID int, position string, count int, netSalary float64) error {
	post, err := m.Post(postID)
	if err != nil {
		return err
	}

	for i := range post.Staff {
		if post.Staff[i].ID == staffID {
			post.Staff[i].Position = position
			post.Staff[i].Count = count
			post.Staff[i].NetSalary = netSalary
			return nil
		}
	}
	return estimateerrors.ErrStaffNotFound
}

func (m *FormModel) RemoveStaff(postID, staffID int) error {
	post, err := m.Post(postID)
	if err != nil {
		return err
	}

	for i := range post.Staff {
		if post.Staff[i].ID == staffID {
			post.Staff = append(post.Staff[:i], post.Staff[i+1:]...)
			return nil
		}
	}
	return estimateerrors.ErrStaffNotFound
}

// SelectTMC checks an equipment item with a quantity chosen for this
// draft. Selecting an already-selected item updates its quantity.
func (m *FormModel) SelectTMC(itemID string, quantity int) {
	for i := range m.selections {
		if m.selections[i].ItemID == itemID {
			m.selections[i].Quantity = quantity
			return
		}
	}
	m.selections = append(m.selections, TMCSelection{ItemID: itemID, Quantity: quantity})
}

func (m *FormModel) UnselectTMC(itemID string) error {
	for i := range m.selections {
		if m.selections[i].ItemID == itemID {
			m.selections = append(m.selections[:i], m.selections[i+1:]...)
			return nil
		}
	}
	return estimateerrors.ErrSelectionNotFound
}

func (m *FormModel) SetMarkup(percent float64) {
	m.markup = &percent
}

// Serialize builds the calculation request: invalid staff entries are
// dropped, posts left with no valid staff are excluded, and the posts
// that remain are renumbered 1..N in display order.
func (m *FormModel) Serialize() (calculation.CalculationRequest, error) {
	posts := make([]calculation.PostInput, 0, len(m.posts))

	for _, post := range m.posts {
		staff := make([]calculation.StaffGroupInput, 0, len(post.Staff))
		for _, group := range post.Staff {
			if !group.Valid() {
				continue
			}
			staff = append(staff, calculation.StaffGroupInput{
				Position:  group.Position,
				Count:     group.Count,
				NetSalary: group.NetSalary,
			})
		}

		if len(staff) == 0 {
			continue
		}

		posts = append(posts, calculation.PostInput{
			PostNumber:  len(posts) + 1,
			HoursPerDay: post.HoursPerDay,
			DaysPerWeek: post.DaysPerWeek,
			Staff:       staff,
		})
	}

	if len(posts) == 0 {
		return calculation.CalculationRequest{}, estimateerrors.ErrNoValidPosts
	}

	items := make([]calculation.TMCSelectionInput, 0, len(m.selections))
	for _, sel := range m.selections {
		items = append(items, calculation.TMCSelectionInput{
			ItemID:   sel.ItemID,
			Quantity: sel.Quantity,
		})
	}

	return calculation.CalculationRequest{
		Posts:         posts,
		TMCItems:      items,
		MarkupPercent: m.markup,
	}, nil
}
