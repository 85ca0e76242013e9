package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrReceiptNotFound is returned when a lookup identifier has no bound score.
var ErrReceiptNotFound = errors.New("no receipt found for that id")

// ErrInvalidReceipt signals that the scoring engine was handed a receipt that
// did not pass through the validator. It indicates a wiring defect in the
// caller, not a user-facing condition.
var ErrInvalidReceipt = errors.New("receipt bypassed validation")

// ValidationError reports why a submitted document is not a well-formed
// receipt. The reasons are for server-side logging; clients only ever see a
// generic message.
type ValidationError struct {
	Reasons []string
}

// NewValidationError builds a ValidationError from one or more reasons.
func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}

func (e *ValidationError) Error() string {
	if len(e.Reasons) == 0 {
		return "the receipt is invalid"
	}
	return fmt.Sprintf("the receipt is invalid: %s", strings.Join(e.Reasons, "; "))
}
