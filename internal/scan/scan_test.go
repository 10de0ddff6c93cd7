package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		valid   bool
		catName string
		credits int
	}{
		{name: "trash", payload: "0", valid: true, catName: "Trash", credits: 5},
		{name: "plastic", payload: "1", valid: true, catName: "Plastic", credits: 15},
		{name: "paper", payload: "2", valid: true, catName: "Paper", credits: 12},
		{name: "glass", payload: "3", valid: true, catName: "Glass", credits: 18},
		{name: "metal", payload: "4", valid: true, catName: "Metal", credits: 20},
		{name: "cardboard", payload: "5", valid: true, catName: "Cardboard", credits: 10},
		{name: "whitespace tolerated", payload: " 2 ", valid: true, catName: "Paper", credits: 12},
		{name: "out of range high", payload: "7", valid: false},
		{name: "out of range negative", payload: "-1", valid: false},
		{name: "non numeric", payload: "abc", valid: false},
		{name: "empty", payload: "", valid: false},
		{name: "float", payload: "2.5", valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			category, ok := Parse(test.payload)
			assert.Equal(t, test.valid, ok)
			if test.valid {
				assert.Equal(t, test.catName, category.Name)
				assert.Equal(t, test.credits, category.Credits)
			}
		})
	}
}

func TestProcessor_ValidScan(t *testing.T) {
	processor := NewProcessor()

	result := processor.ProcessAt("2", time.Now())
	assert.True(t, result.Accepted)
	assert.False(t, result.Invalid)
	assert.False(t, result.Suppressed)
	require.NotNil(t, result.Category)
	assert.Equal(t, "Paper", result.Category.Name)
	assert.Equal(t, 12, result.Credits)
	assert.NotEmpty(t, result.EventID)
	require.NotNil(t, result.Tone)
	assert.Equal(t, 880, result.Tone.FrequencyHz)
	assert.Equal(t, 300, result.Tone.DurationMs)
}

func TestProcessor_InvalidScan(t *testing.T) {
	processor := NewProcessor()

	result := processor.ProcessAt("abc", time.Now())
	assert.False(t, result.Accepted)
	assert.True(t, result.Invalid)
	assert.Nil(t, result.Category)
	assert.Zero(t, result.Credits)
	require.NotNil(t, result.Tone)
	assert.Equal(t, 300, result.Tone.FrequencyHz)
	assert.Equal(t, 500, result.Tone.DurationMs)
}

func TestProcessor_LatchSuppressesWithinWindow(t *testing.T) {
	processor := NewProcessor()
	start := time.Now()

	first := processor.ProcessAt("1", start)
	assert.True(t, first.Accepted)

	// A different valid code inside the window is suppressed too; the latch
	// is not keyed on payload identity.
	second := processor.ProcessAt("3", start.Add(500*time.Millisecond))
	assert.True(t, second.Suppressed)
	assert.False(t, second.Accepted)
	assert.Nil(t, second.Tone)

	third := processor.ProcessAt("3", start.Add(LatchWindow+10*time.Millisecond))
	assert.True(t, third.Accepted)
	assert.Equal(t, 18, third.Credits)
}

func TestProcessor_InvalidScanArmsLatch(t *testing.T) {
	processor := NewProcessor()
	start := time.Now()

	first := processor.ProcessAt("garbage", start)
	assert.True(t, first.Invalid)

	// Even a rejected scan occupies the window.
	second := processor.ProcessAt("2", start.Add(200*time.Millisecond))
	assert.True(t, second.Suppressed)

	third := processor.ProcessAt("2", start.Add(LatchWindow+10*time.Millisecond))
	assert.True(t, third.Accepted)
}

func TestProcessor_SuppressedScanDoesNotExtendWindow(t *testing.T) {
	processor := NewProcessor()
	start := time.Now()

	assert.True(t, processor.ProcessAt("1", start).Accepted)
	assert.True(t, processor.ProcessAt("1", start.Add(900*time.Millisecond)).Suppressed)

	// The window runs from the registered scan, not the suppressed one.
	result := processor.ProcessAt("1", start.Add(LatchWindow+10*time.Millisecond))
	assert.True(t, result.Accepted)
}
