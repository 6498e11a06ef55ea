package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"address-resolver/internal/models"
	"address-resolver/internal/normalizer"

	"github.com/rs/zerolog/log"
)

// DefaultDelay paces consecutive gateway lookups within a batch.
const DefaultDelay = 500 * time.Millisecond

// ErrEmptyBatch is returned when a batch has no non-blank lines.
var ErrEmptyBatch = errors.New("service: no addresses supplied")

// AddressResolver interface for dependency injection
type AddressResolver interface {
	Resolve(ctx context.Context, original, query string) (models.AddressRecord, error)
}

// Orchestrator resolves input lines one at a time, in order.
type Orchestrator struct {
	resolver AddressResolver
	delay    time.Duration
	sleep    func(time.Duration)
}

// NewOrchestrator creates an orchestrator pausing delay between lines.
func NewOrchestrator(resolver AddressResolver, delay time.Duration) *Orchestrator {
	return &Orchestrator{
		resolver: resolver,
		delay:    delay,
		sleep:    time.Sleep,
	}
}

// SplitLines splits text into trimmed, non-blank lines.
func SplitLines(text string) []string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func nonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// ProcessBatch resolves every non-blank line and returns one record per line in input order.
// onProgress, when set, is called after each record is appended.
func (o *Orchestrator) ProcessBatch(ctx context.Context, lines []string, onProgress func(models.Progress, models.AddressRecord)) ([]models.AddressRecord, error) {
	lines = nonBlank(lines)
	if len(lines) == 0 {
		return nil, ErrEmptyBatch
	}

	total := len(lines)
	records := make([]models.AddressRecord, 0, total)
	for i, line := range lines {
		rec := o.ResolveLine(ctx, line)
		records = append(records, rec)

		progress := models.Progress{Current: i + 1, Total: total}
		log.Info().
			Int("current", progress.Current).
			Int("total", progress.Total).
			Str("address", line).
			Str("confidence", string(rec.MatchConfidence)).
			Msg("address processed")
		if onProgress != nil {
			onProgress(progress, rec)
		}

		if i < total-1 && o.delay > 0 {
			o.sleep(o.delay)
		}
	}

	return records, nil
}

// ResolveLine normalizes and resolves a single raw line. Any failure yields an
// unresolved record with confidence none.
func (o *Orchestrator) ResolveLine(ctx context.Context, line string) (rec models.AddressRecord) {
	original := strings.TrimSpace(line)
	cleaned := normalizer.Normalize(original)

	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Str("address", original).Msg("address resolution panicked")
			rec = models.UnresolvedRecord(original, cleaned, models.ConfidenceNone)
		}
	}()

	r, err := o.resolver.Resolve(ctx, original, cleaned)
	if err != nil {
		log.Error().Err(err).Str("address", original).Msg("address resolution failed")
		return models.UnresolvedRecord(original, cleaned, models.ConfidenceNone)
	}
	return r
}
