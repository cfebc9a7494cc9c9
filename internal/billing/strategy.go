// Package billing computes what a patient pays for a consultation. Strategies
// are stateless and composed per request; the scheduling core never touches
// them.
package billing

import "fmt"

type Strategy interface {
	// Amount returns what the patient pays for the given base fee.
	Amount(baseFee float64) float64
	// Kind names the billing type.
	Kind() string
	// Details renders an itemized breakdown for the given base fee.
	Details(baseFee float64) string
}

// Cash applies a flat discount percentage to the base fee.
type Cash struct {
	DiscountPercent float64
}

func (c Cash) Amount(baseFee float64) float64 {
	discount := baseFee * (c.DiscountPercent / 100)
	return baseFee - discount
}

func (c Cash) Kind() string { return "Cash" }

func (c Cash) Details(baseFee float64) string {
	discount := baseFee * (c.DiscountPercent / 100)
	total := baseFee - discount

	if c.DiscountPercent > 0 {
		return fmt.Sprintf(
			"Billing Type: Cash\nBase Fee: $%.2f\nDiscount: %.0f%%\nDiscount Amount: $%.2f\nTotal Payable: $%.2f",
			baseFee, c.DiscountPercent, discount, total,
		)
	}
	return fmt.Sprintf("Billing Type: Cash\nTotal Payable: $%.2f", total)
}

// Insurance bills the patient for whatever the coverage percentage leaves
// uncovered.
type Insurance struct {
	Provider        string
	PolicyNumber    string
	CoveragePercent float64
}

func (i Insurance) Amount(baseFee float64) float64 {
	covered := baseFee * (i.CoveragePercent / 100)
	return baseFee - covered
}

func (i Insurance) Kind() string { return "Insurance" }

func (i Insurance) Details(baseFee float64) string {
	covered := baseFee * (i.CoveragePercent / 100)
	payable := baseFee - covered

	return fmt.Sprintf(
		"Billing Type: Insurance\nInsurance Provider: %s\nPolicy Number: %s\nBase Fee: $%.2f\nCoverage: %.0f%%\nInsurance Pays: $%.2f\nPatient Pays: $%.2f",
		i.Provider, i.PolicyNumber, baseFee, i.CoveragePercent, covered, payable,
	)
}
