package utils

import "fmt"

// FormatMoney keeps consistent decimal formatting for peso amounts in
// reports and PDF output.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
