package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosnap/internal/models"
)

func TestLineCap(t *testing.T) {
	tests := []struct {
		name      string
		line      models.CartLine
		available int
		want      int
	}{
		{name: "credit value binds", line: models.CartLine{Credits: 25, Quantity: 2}, available: 892, want: 25},
		{name: "balance binds", line: models.CartLine{Credits: 65, Quantity: 20}, available: 892, want: 44},
		{name: "zero balance", line: models.CartLine{Credits: 25, Quantity: 1}, available: 0, want: 0},
		{name: "zero quantity", line: models.CartLine{Credits: 25, Quantity: 0}, available: 892, want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, LineCap(test.line, test.available))
		})
	}
}

func TestQuote_SliderScenario(t *testing.T) {
	// One line {price 45, quantity 2, creditValue 25}, slider at 10:
	// total = 2*45 - 2*10 = 70.
	lines := []models.CartLine{{ProductID: 1, Price: 45, Quantity: 2, Credits: 25}}
	selections := []models.QuoteLine{{ProductID: 1, CreditsPerUnit: 10}}

	quote, err := Quote(lines, selections, 892)
	require.NoError(t, err)
	assert.Equal(t, 90.0, quote.Subtotal)
	assert.Equal(t, 20, quote.CreditsUsed)
	assert.Equal(t, 70.0, quote.Total)
}

func TestQuote_NoSelections(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Price: 129, Quantity: 1, Credits: 65},
		{ProductID: 2, Price: 24, Quantity: 3, Credits: 12},
	}

	quote, err := Quote(lines, nil, 892)
	require.NoError(t, err)
	assert.Equal(t, 201.0, quote.Subtotal)
	assert.Zero(t, quote.CreditsUsed)
	assert.Equal(t, 201.0, quote.Total)
}

func TestQuote_UnknownLine(t *testing.T) {
	lines := []models.CartLine{{ProductID: 1, Price: 45, Quantity: 1, Credits: 25}}
	selections := []models.QuoteLine{{ProductID: 99, CreditsPerUnit: 5}}

	_, err := Quote(lines, selections, 892)
	assert.ErrorIs(t, err, ErrUnknownLine)
}

func TestQuote_LineCapEnforced(t *testing.T) {
	lines := []models.CartLine{{ProductID: 1, Price: 45, Quantity: 2, Credits: 25}}

	_, err := Quote(lines, []models.QuoteLine{{ProductID: 1, CreditsPerUnit: 26}}, 892)
	assert.ErrorIs(t, err, ErrCreditsExceedCap)

	_, err = Quote(lines, []models.QuoteLine{{ProductID: 1, CreditsPerUnit: -1}}, 892)
	assert.ErrorIs(t, err, ErrCreditsExceedCap)
}

func TestQuote_GlobalCapEnforced(t *testing.T) {
	// Each line's cap alone admits 25 per unit against the undivided
	// balance, but together the allocation would overdraw it.
	lines := []models.CartLine{
		{ProductID: 1, Price: 100, Quantity: 2, Credits: 30},
		{ProductID: 2, Price: 100, Quantity: 2, Credits: 30},
	}
	selections := []models.QuoteLine{
		{ProductID: 1, CreditsPerUnit: 25},
		{ProductID: 2, CreditsPerUnit: 25},
	}

	_, err := Quote(lines, selections, 60)
	assert.ErrorIs(t, err, ErrCreditsOverAllocated)
}

func TestQuote_TotalNeverNegative(t *testing.T) {
	lines := []models.CartLine{{ProductID: 1, Price: 5, Quantity: 1, Credits: 10}}

	quote, err := Quote(lines, []models.QuoteLine{{ProductID: 1, CreditsPerUnit: 10}}, 892)
	require.NoError(t, err)
	assert.Equal(t, 0.0, quote.Total)
}
