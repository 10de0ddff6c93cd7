// Package checkout implements the credit-slider arithmetic of the cart
// page: per-line caps on how many credits may be redeemed and the order
// totals derived from the chosen slider positions.
package checkout

import (
	"errors"

	"ecosnap/internal/models"
)

// Quote validation errors.
var (
	// ErrUnknownLine indicates a slider selection for a product that has no cart line.
	ErrUnknownLine = errors.New("checkout: selection references a product not in the cart")
	// ErrCreditsExceedCap indicates a slider value above the line's cap.
	ErrCreditsExceedCap = errors.New("checkout: credits exceed the line cap")
	// ErrCreditsOverAllocated indicates the summed allocation exceeds the available balance.
	ErrCreditsOverAllocated = errors.New("checkout: credits exceed the available balance")
)

// LineCap is the per-unit slider maximum for one cart line: the line's
// credit value, bounded by the full available balance spread over the
// line's quantity. Each line is capped independently against the full
// balance; the cross-line cap is enforced by Quote.
func LineCap(line models.CartLine, availableCredits int) int {
	if line.Quantity < 1 {
		return 0
	}
	limit := availableCredits / line.Quantity
	if line.Credits < limit {
		limit = line.Credits
	}
	if limit < 0 {
		return 0
	}
	return limit
}

// Quote computes the order summary for the given slider selections.
// Selections must reference cart lines and respect both the per-line caps
// and, across all lines together, the available balance. The total never
// goes negative.
func Quote(lines []models.CartLine, selections []models.QuoteLine, availableCredits int) (models.QuoteResponse, error) {
	perUnit := make(map[int]int, len(selections))
	for _, sel := range selections {
		perUnit[sel.ProductID] = sel.CreditsPerUnit
	}

	byProduct := make(map[int]models.CartLine, len(lines))
	subtotal := 0.0
	for _, line := range lines {
		byProduct[line.ProductID] = line
		subtotal += line.Price * float64(line.Quantity)
	}

	creditsUsed := 0
	for productID, credits := range perUnit {
		line, ok := byProduct[productID]
		if !ok {
			return models.QuoteResponse{}, ErrUnknownLine
		}
		if credits < 0 || credits > LineCap(line, availableCredits) {
			return models.QuoteResponse{}, ErrCreditsExceedCap
		}
		creditsUsed += credits * line.Quantity
	}

	if creditsUsed > availableCredits {
		return models.QuoteResponse{}, ErrCreditsOverAllocated
	}

	total := subtotal - float64(creditsUsed)
	if total < 0 {
		total = 0
	}

	return models.QuoteResponse{
		Subtotal:    subtotal,
		CreditsUsed: creditsUsed,
		Total:       total,
	}, nil
}
