package events

import "time"

const CalculationPerformedTopic = "pricing.calculation.v1"

type CalculationPerformedEvent struct {
	EventType         string    `json:"event_type"`
	CalculationID     string    `json:"calculation_id"`
	TotalPosts        int       `json:"total_posts"`
	TotalMonthlyHours int       `json:"total_monthly_hours"`
	Subtotal          float64   `json:"subtotal"`
	FinalPrice        float64   `json:"final_price"`
	OccurredAt        time.Time `json:"occurred_at"`
}
