// Package scan interprets decoded QR payloads from waste bins. A payload is
// a bare decimal integer mapping to one of the six waste categories; any
// other text is invalid. A one-second latch collapses rapid successive
// scans from a continuous camera stream into a single event, regardless of
// payload identity.
package scan

import (
	"strconv"
	"strings"
	"time"

	"ecosnap/internal/catalog"
	"ecosnap/internal/models"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Audio cues for the client to synthesize: a short high beep on success, a
// longer low tone on an invalid code.
var (
	successTone = models.Tone{FrequencyHz: 880, DurationMs: 300}
	errorTone   = models.Tone{FrequencyHz: 300, DurationMs: 500}
)

// LatchWindow is how long after one registered scan all further scans are
// suppressed.
const LatchWindow = time.Second

// Processor classifies payloads behind the re-entrancy latch.
type Processor struct {
	latch *rate.Limiter
}

// NewProcessor returns a Processor with a fresh latch.
func NewProcessor() *Processor {
	return &Processor{latch: rate.NewLimiter(rate.Every(LatchWindow), 1)}
}

// Process classifies one decoded payload. Within LatchWindow of the last
// registered scan the result is suppressed; otherwise the payload is parsed
// and either rewarded or flagged invalid with its distinct tone.
func (p *Processor) Process(payload string) models.ScanResult {
	return p.ProcessAt(payload, time.Now())
}

// ProcessAt is Process with an explicit timestamp, letting tests drive the
// latch clock.
func (p *Processor) ProcessAt(payload string, now time.Time) models.ScanResult {
	if !p.latch.AllowN(now, 1) {
		return models.ScanResult{Suppressed: true}
	}

	category, ok := Parse(payload)
	if !ok {
		tone := errorTone
		return models.ScanResult{Invalid: true, Tone: &tone}
	}

	tone := successTone
	return models.ScanResult{
		EventID:  uuid.NewString(),
		Accepted: true,
		Category: &category,
		Credits:  category.Credits,
		Tone:     &tone,
	}
}

// Parse maps a decoded payload to its waste category. Validity requires a
// base-10 integer in the fixed category range.
func Parse(payload string) (models.WasteCategory, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil {
		return models.WasteCategory{}, false
	}
	return catalog.CategoryByID(value)
}
