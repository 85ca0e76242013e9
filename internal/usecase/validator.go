package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"receipt-processor/internal/domain"
)

// Validation patterns. The money pattern is deliberately strict: one or more
// integer digits, a decimal point and exactly two fraction digits, no sign.
// The time pattern admits 00:00 through 23:59 and nothing else, so 9:30 and
// 24:10 are rejected.
var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern  = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
	moneyPattern = regexp.MustCompile(`^\d+\.\d{2}$`)
)

// ParseReceipt checks a raw JSON document against the receipt schema and
// returns the typed receipt. The whole document is either accepted or
// rejected with a *domain.ValidationError; there is no partial acceptance.
// ParseReceipt is a pure function of its input.
func ParseReceipt(document []byte) (domain.Receipt, error) {
	var receipt domain.Receipt
	if err := json.Unmarshal(document, &receipt); err != nil {
		return domain.Receipt{}, domain.NewValidationError(fmt.Sprintf("malformed document: %v", err))
	}

	var reasons []string
	if receipt.Retailer == "" {
		reasons = append(reasons, "retailer must be a non-empty string")
	}
	if !datePattern.MatchString(receipt.PurchaseDate) {
		reasons = append(reasons, fmt.Sprintf("purchaseDate %q does not match YYYY-MM-DD", receipt.PurchaseDate))
	} else if _, err := time.Parse(time.DateOnly, receipt.PurchaseDate); err != nil {
		reasons = append(reasons, fmt.Sprintf("purchaseDate %q is not a calendar date", receipt.PurchaseDate))
	}
	if !timePattern.MatchString(receipt.PurchaseTime) {
		reasons = append(reasons, fmt.Sprintf("purchaseTime %q does not match HH:MM on a 24-hour clock", receipt.PurchaseTime))
	}
	if !moneyPattern.MatchString(receipt.Total) {
		reasons = append(reasons, fmt.Sprintf("total %q is not a currency amount", receipt.Total))
	}
	if len(receipt.Items) == 0 {
		reasons = append(reasons, "items must contain at least one item")
	}
	for i, item := range receipt.Items {
		if item.ShortDescription == "" {
			reasons = append(reasons, fmt.Sprintf("items[%d].shortDescription must be a non-empty string", i))
		}
		if !moneyPattern.MatchString(item.Price) {
			reasons = append(reasons, fmt.Sprintf("items[%d].price %q is not a currency amount", i, item.Price))
		}
	}

	if len(reasons) > 0 {
		return domain.Receipt{}, domain.NewValidationError(reasons...)
	}
	return receipt, nil
}
