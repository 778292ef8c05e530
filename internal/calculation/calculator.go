package calculation

import (
	"fmt"
	"math"

	calculationerrors "github.com/darkhan2409/security-cost-calculator/internal/calculation/errors"
	"github.com/darkhan2409/security-cost-calculator/internal/tmc"
)

const DefaultMarkupPercent = 20.0

// weeksPerMonth converts a weekly schedule into monthly hours.
// Contract constant: 30 days / 7, with the product rounded up to
// whole hours. A 12/7 schedule is exactly 360 h/month.
const weeksPerMonth = 30.0 / 7.0

// MonthlyHours returns the billable hours per month for a schedule.
func MonthlyHours(hoursPerDay, daysPerWeek int) int {
	return int(math.Ceil(weeksPerMonth * float64(hoursPerDay) * float64(daysPerWeek)))
}

// ScheduleLabel renders a schedule as "hours/days", e.g. "12/7".
// Display only, never used in arithmetic.
func ScheduleLabel(hoursPerDay, daysPerWeek int) string {
	return fmt.Sprintf("%d/%d", hoursPerDay, daysPerWeek)
}

// ResolvedSelection is an equipment selection whose registry item has
// already been looked up. Quantity is the quantity chosen for this
// calculation, independent of the registry's stored quantity.
type ResolvedSelection struct {
	Item     tmc.TMC
	Quantity int
}

// Calculate produces the full cost breakdown for a set of posts,
// resolved equipment selections and a markup percentage. It is a pure
// function: identical inputs always yield an identical result.
func Calculate(
	posts []PostInput,
	selections []ResolvedSelection,
	markupPercent float64,
) (CalculationResult, error) {
	postsData := make([]PostBreakdown, 0, len(posts))
	var totalLaborCost float64
	var totalMonthlyHours int

	for _, post := range posts {
		monthlyHours := MonthlyHours(post.HoursPerDay, post.DaysPerWeek)

		staffDetails := make([]StaffGroupDetail, 0, len(post.Staff))
		var postLaborCost float64

		for _, group := range post.Staff {
			// Salaries are already monthly, so group cost is not
			// scaled by the schedule
			groupCost := float64(group.Count) * group.NetSalary
			postLaborCost += groupCost

			staffDetails = append(staffDetails, StaffGroupDetail{
				Position:       group.Position,
				Count:          group.Count,
				NetSalary:      group.NetSalary,
				TotalCostGroup: groupCost,
			})
		}

		postsData = append(postsData, PostBreakdown{
			PostNumber:     post.PostNumber,
			Schedule:       ScheduleLabel(post.HoursPerDay, post.DaysPerWeek),
			MonthlyHours:   monthlyHours,
			StaffDetails:   staffDetails,
			TotalLaborCost: postLaborCost,
		})

		totalLaborCost += postLaborCost
		totalMonthlyHours += monthlyHours
	}

	tmcData := make([]TMCBreakdown, 0, len(selections))
	var totalTMCCost float64

	for _, sel := range selections {
		itemMonthlyCost := sel.Item.MonthlyCost() * float64(sel.Quantity)
		totalTMCCost += itemMonthlyCost

		tmcData = append(tmcData, TMCBreakdown{
			ID:                 sel.Item.ID.String(),
			Name:               sel.Item.Name,
			Price:              sel.Item.Price,
			Quantity:           sel.Quantity,
			TotalCost:          sel.Item.TotalCost() * float64(sel.Quantity),
			AmortizationMonths: sel.Item.AmortizationMonths,
			MonthlyCost:        itemMonthlyCost,
		})
	}

	if totalMonthlyHours == 0 {
		return CalculationResult{}, calculationerrors.ErrNoBillableHours
	}

	// Round the components once, then derive every dependent figure
	// from the rounded values, so the reported summary satisfies
	// subtotal = labor + tmc and final = subtotal + markup exactly.
	totalLabor := round2(totalLaborCost)
	totalTMC := round2(totalTMCCost)
	subtotal := round2(totalLabor + totalTMC)
	markupAmount := round2(subtotal * (markupPercent / 100))
	finalPrice := round2(subtotal + markupAmount)
	hourlyRate := round2(finalPrice / float64(totalMonthlyHours))

	return CalculationResult{
		Posts: postsData,
		TMC:   tmcData,
		Summary: Summary{
			TotalPosts:        len(posts),
			TotalMonthlyHours: totalMonthlyHours,
			TotalLaborCost:    totalLabor,
			TotalTMCCost:      totalTMC,
			Subtotal:          subtotal,
			MarkupPercent:     markupPercent,
			MarkupAmount:      markupAmount,
			FinalPrice:        finalPrice,
			HourlyRate:        hourlyRate,
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
