package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"receipt-processor/internal/domain"
)

// The afternoon bonus window is exclusive at both ends.
const (
	afternoonStart = 14 * 60
	afternoonEnd   = 16 * 60
)

var (
	one           = decimal.NewFromInt(1)
	quarter       = decimal.RequireFromString("0.25")
	descBonusRate = decimal.RequireFromString("0.2")
)

// Score computes the reward points for a validated receipt as the sum of six
// independent rules:
//
//  1. one point per alphanumeric character in the retailer name;
//  2. 50 points if the total has no cents;
//  3. 25 points if the total is a multiple of 0.25;
//  4. 5 points for every complete pair of items;
//  5. ceil(price * 0.2) points per item whose trimmed description length is a
//     multiple of 3 (length 0 qualifies);
//  6. 6 points for an odd purchase day and 10 points for a purchase strictly
//     between 14:00 and 16:00.
//
// Score is pure and deterministic. When handed data that bypassed the
// validator it fails with domain.ErrInvalidReceipt rather than producing a
// wrong score.
func Score(receipt domain.Receipt) (int64, error) {
	var points int64

	for _, r := range receipt.Retailer {
		if isAlphanumeric(r) {
			points++
		}
	}

	total, err := decimal.NewFromString(receipt.Total)
	if err != nil || total.IsNegative() {
		return 0, fmt.Errorf("total %q: %w", receipt.Total, domain.ErrInvalidReceipt)
	}
	if total.Mod(one).IsZero() {
		points += 50
	}
	if total.Mod(quarter).IsZero() {
		points += 25
	}

	points += int64(len(receipt.Items)/2) * 5

	for _, item := range receipt.Items {
		trimmed := strings.TrimSpace(item.ShortDescription)
		if len(trimmed)%3 != 0 {
			continue
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil || price.IsNegative() {
			return 0, fmt.Errorf("item price %q: %w", item.Price, domain.ErrInvalidReceipt)
		}
		points += price.Mul(descBonusRate).Ceil().IntPart()
	}

	day, err := purchaseDay(receipt.PurchaseDate)
	if err != nil {
		return 0, err
	}
	if day%2 == 1 {
		points += 6
	}

	minutes, err := purchaseMinutes(receipt.PurchaseTime)
	if err != nil {
		return 0, err
	}
	if minutes > afternoonStart && minutes < afternoonEnd {
		points += 10
	}

	return points, nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// purchaseDay extracts the day-of-month from a YYYY-MM-DD date string.
func purchaseDay(date string) (int, error) {
	if !datePattern.MatchString(date) {
		return 0, fmt.Errorf("purchaseDate %q: %w", date, domain.ErrInvalidReceipt)
	}
	day, err := strconv.Atoi(date[len(date)-2:])
	if err != nil {
		return 0, fmt.Errorf("purchaseDate %q: %w", date, domain.ErrInvalidReceipt)
	}
	return day, nil
}

// purchaseMinutes converts an HH:MM clock time to minutes since midnight.
func purchaseMinutes(clock string) (int, error) {
	if !timePattern.MatchString(clock) {
		return 0, fmt.Errorf("purchaseTime %q: %w", clock, domain.ErrInvalidReceipt)
	}
	hours, _ := strconv.Atoi(clock[:2])
	mins, _ := strconv.Atoi(clock[3:])
	return hours*60 + mins, nil
}
