package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/ploneconf-schedule/internal/logger"
	"github.com/pfrederiksen/ploneconf-schedule/internal/schedule"
)

// Scraper fetches and parses schedule pages one day at a time
type Scraper struct {
	source Source
}

// New creates a Scraper reading pages from source
func New(source Source) *Scraper {
	return &Scraper{source: source}
}

// FetchDay fetches the page for day and parses its schedule table
func (s *Scraper) FetchDay(ctx context.Context, day int) (*schedule.Day, error) {
	started := time.Now()

	body, err := s.source.Fetch(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}
	defer body.Close()

	parsed, err := ParseDay(body, day)
	if err != nil {
		return nil, fmt.Errorf("day %d: %w", day, err)
	}

	elapsed := time.Since(started)
	logger.RecordTiming("fetch.page", elapsed)
	logger.IncrCounter("pages.fetched")
	logger.Debug("Parsed schedule page", logger.Fields{
		"day":       day,
		"locations": len(parsed.Locations),
		"slots":     len(parsed.Slots),
		"elapsed":   elapsed.String(),
	})

	return parsed, nil
}
