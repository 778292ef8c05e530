package salary

type BreakdownRequest struct {
	NetSalary float64 `json:"net_salary" binding:"required,gt=0"`
	// Base deduction (30 MRP) applies unless explicitly disabled
	HasDeduction *bool `json:"has_deduction"`
}
