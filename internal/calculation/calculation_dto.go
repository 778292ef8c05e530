package calculation

type StaffGroupInput struct {
	Position  string  `json:"position" binding:"required"`
	Count     int     `json:"count" binding:"required,gt=0"`
	NetSalary float64 `json:"net_salary" binding:"required,gt=0"`
}

type PostInput struct {
	PostNumber  int               `json:"post_number" binding:"required,gt=0"`
	HoursPerDay int               `json:"hours_per_day" binding:"required,min=1,max=24"`
	DaysPerWeek int               `json:"days_per_week" binding:"required,min=1,max=7"`
	Staff       []StaffGroupInput `json:"staff" binding:"required,min=1,dive"`
}

type TMCSelectionInput struct {
	ItemID   string `json:"item_id" binding:"required,uuid4"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type CalculationRequest struct {
	Posts         []PostInput         `json:"posts" binding:"required,min=1,dive"`
	TMCItems      []TMCSelectionInput `json:"tmc_items" binding:"omitempty,dive"`
	MarkupPercent *float64            `json:"markup_percent" binding:"omitempty,gte=0"`
}

type StaffGroupDetail struct {
	Position       string  `json:"position"`
	Count          int     `json:"count"`
	NetSalary      float64 `json:"net_salary"`
	TotalCostGroup float64 `json:"total_cost_group"`
}

type PostBreakdown struct {
	PostNumber     int                `json:"post_number"`
	Schedule       string             `json:"schedule"`
	MonthlyHours   int                `json:"monthly_hours"`
	StaffDetails   []StaffGroupDetail `json:"staff_details"`
	TotalLaborCost float64            `json:"total_labor_cost"`
}

type TMCBreakdown struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	Quantity           int     `json:"quantity"`
	TotalCost          float64 `json:"total_cost"`
	AmortizationMonths int     `json:"amortization_months"`
	MonthlyCost        float64 `json:"monthly_cost"`
}

type Summary struct {
	TotalPosts        int     `json:"total_posts"`
	TotalMonthlyHours int     `json:"total_monthly_hours"`
	TotalLaborCost    float64 `json:"total_labor_cost"`
	TotalTMCCost      float64 `json:"total_tmc_cost"`
	Subtotal          float64 `json:"subtotal"`
	MarkupPercent     float64 `json:"markup_percent"`
	MarkupAmount      float64 `json:"markup_amount"`
	FinalPrice        float64 `json:"final_price"`
	HourlyRate        float64 `json:"hourly_rate"`
}

type CalculationResult struct {
	Posts   []PostBreakdown `json:"posts"`
	TMC     []TMCBreakdown  `json:"tmc"`
	Summary Summary         `json:"summary"`
}
