// Package salary converts a desired take-home ("net") salary into the
// full monthly cost an employer pays, using Kazakhstan 2026 rates.
package salary

import (
	"errors"
	"math"
)

// 2026 constants
const (
	MRP           = 4325.0 // monthly calculation index, tenge
	BaseDeduction = 30 * MRP

	// Employee rates (withheld from gross)
	OPVRate   = 0.10 // mandatory pension contributions
	VOSMSRate = 0.02 // employee medical insurance, from gross

	// Employer rates (on top of gross)
	OPVRRate  = 0.035 // employer pension contributions
	SORate    = 0.05  // social deductions, from (gross - OPV)
	SNRate    = 0.06  // social tax, from (gross - OPV - VOSMS)
	OOSMSRate = 0.03  // employer medical insurance, from gross

	// Progressive IPN (personal income tax)
	IPNThresholdAnnualMRP = 8500
	IPNRateLow            = 0.10
	IPNRateHigh           = 0.15
)

const (
	binarySearchTolerance  = 1.0 // 1 tenge
	binarySearchMultiplier = 2.0
)

var ErrNonPositiveNet = errors.New("net salary must be greater than zero")

// IPNProgressive computes monthly personal income tax: 10% up to
// 8500 MRP/year, 15% on the part above.
func IPNProgressive(taxableIncomeMonthly float64) float64 {
	if taxableIncomeMonthly <= 0 {
		return 0
	}

	thresholdMonthly := (IPNThresholdAnnualMRP * MRP) / 12

	if taxableIncomeMonthly <= thresholdMonthly {
		return taxableIncomeMonthly * IPNRateLow
	}
	return thresholdMonthly*IPNRateLow +
		(taxableIncomeMonthly-thresholdMonthly)*IPNRateHigh
}

// GrossFromNet finds the gross salary that nets out to netSalary after
// OPV, VOSMS and progressive IPN, by binary search to 1 tenge.
func GrossFromNet(netSalary float64, hasDeduction bool) (float64, error) {
	if netSalary <= 0 {
		return 0, ErrNonPositiveNet
	}

	lower := netSalary
	upper := netSalary * binarySearchMultiplier
	gross := netSalary

	for upper-lower > binarySearchTolerance {
		gross = (lower + upper) / 2

		opv := gross * OPVRate
		vosms := gross * VOSMSRate

		taxable := gross - opv - vosms
		if hasDeduction {
			taxable -= BaseDeduction
		}
		taxable = math.Max(0, taxable)

		ipn := IPNProgressive(taxable)
		calculatedNet := gross - opv - vosms - ipn

		if calculatedNet < netSalary {
			lower = gross
		} else {
			upper = gross
		}
	}

	return gross, nil
}

type EmployeeDeductions struct {
	OPV   float64 `json:"opv"`
	VOSMS float64 `json:"vosms"`
	IPN   float64 `json:"ipn"`
	Total float64 `json:"total"`
}

type EmployerPayments struct {
	OPVR  float64 `json:"opvr"`
	SO    float64 `json:"so"`
	SN    float64 `json:"sn"`
	OOSMS float64 `json:"oosms"`
	Total float64 `json:"total"`
}

type SalaryBreakdown struct {
	GrossSalary        float64            `json:"gross_salary"`
	EmployeeDeductions EmployeeDeductions `json:"employee_deductions"`
	NetSalary          float64            `json:"net_salary"`
	EmployerPayments   EmployerPayments   `json:"employer_payments"`
	TotalCost          float64            `json:"total_cost"`
	DeductionApplied   bool               `json:"deduction_applied"`
}

// Breakdown returns the full employee/employer split for a desired
// net salary, all figures rounded to 2 decimals.
func Breakdown(netSalary float64, hasDeduction bool) (SalaryBreakdown, error) {
	gross, err := GrossFromNet(netSalary, hasDeduction)
	if err != nil {
		return SalaryBreakdown{}, err
	}

	opv := gross * OPVRate
	vosms := gross * VOSMSRate

	taxable := gross - opv - vosms
	if hasDeduction {
		taxable -= BaseDeduction
	}
	taxable = math.Max(0, taxable)

	ipn := IPNProgressive(taxable)
	netCalculated := gross - opv - vosms - ipn

	so := (gross - opv) * SORate
	oosms := gross * OOSMSRate
	sn := (gross - opv - vosms) * SNRate
	opvr := gross * OPVRRate

	totalCost := gross + opvr + so + sn + oosms

	return SalaryBreakdown{
		GrossSalary: round2(gross),
		EmployeeDeductions: EmployeeDeductions{
			OPV:   round2(opv),
			VOSMS: round2(vosms),
			IPN:   round2(ipn),
			Total: round2(opv + vosms + ipn),
		},
		NetSalary: round2(netCalculated),
		EmployerPayments: EmployerPayments{
			OPVR:  round2(opvr),
			SO:    round2(so),
			SN:    round2(sn),
			OOSMS: round2(oosms),
			Total: round2(opvr + so + sn + oosms),
		},
		TotalCost:        round2(totalCost),
		DeductionApplied: hasDeduction,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
