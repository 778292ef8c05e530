package estimate

type UpdatePostRequest struct {
	HoursPerDay int `json:"hours_per_day" binding:"required,min=1,max=24"`
	DaysPerWeek int `json:"days_per_week" binding:"required,min=1,max=7"`
}

type UpdateStaffRequest struct {
	Position  string  `json:"position" binding:"required"`
	Count     int     `json:"count" binding:"required,gt=0"`
	NetSalary float64 `json:"net_salary" binding:"required,gt=0"`
}

type SelectTMCRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type SetMarkupRequest struct {
	MarkupPercent *float64 `json:"markup_percent" binding:"required,gte=0"`
}

type StaffGroupView struct {
	ID        int     `json:"id"`
	Position  string  `json:"position"`
	Count     int     `json:"count"`
	NetSalary float64 `json:"net_salary"`
}

type PostView struct {
	ID          int              `json:"id"`
	PostNumber  int              `json:"post_number"`
	HoursPerDay int              `json:"hours_per_day"`
	DaysPerWeek int              `json:"days_per_week"`
	Staff       []StaffGroupView `json:"staff"`
}

type TMCSelectionView struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type DraftResponse struct {
	ID            string             `json:"id"`
	Posts         []PostView         `json:"posts"`
	TMCSelections []TMCSelectionView `json:"tmc_selections"`
	MarkupPercent float64            `json:"markup_percent"`
}
