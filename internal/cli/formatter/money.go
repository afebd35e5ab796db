package formatter

import "fmt"

// Money formats an amount with the fixed euro symbol and two decimals.
// Formatting lives here, not in the finance engine: the engine's contract
// is plain float64.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

// MoneyPer renders an amount with its billing unit, e.g. "32.00 €/month".
func MoneyPer(amount float64, unit string) string {
	return fmt.Sprintf("%.2f €/%s", amount, unit)
}
