package scraper

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/ploneconf-schedule/internal/logger"
	"github.com/pfrederiksen/ploneconf-schedule/internal/schedule"
)

// ContentAnchor selects the page body block that holds the schedule table
const ContentAnchor = "#parent-fieldname-text"

var (
	ErrAnchorNotFound = errors.New("schedule anchor " + ContentAnchor + " not found")
	ErrTableNotFound  = errors.New("schedule table not found")
	ErrNoLocations    = errors.New("schedule header has no locations")
	ErrColumnMismatch = errors.New("more session cells than locations")
)

// ParseDay walks the schedule table of one day's page
func ParseDay(r io.Reader, number int) (*schedule.Day, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	anchor := doc.Find(ContentAnchor).First()
	if anchor.Length() == 0 {
		return nil, ErrAnchorNotFound
	}

	table := anchor.ChildrenFiltered("table").First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	rows := table.Find("tr")
	day := &schedule.Day{Number: number}

	// The first header cell is the corner label above the time column
	header := rows.First().Children()
	if header.Length() < 2 {
		return nil, ErrNoLocations
	}
	header.Slice(1, goquery.ToEnd).Each(func(_ int, cell *goquery.Selection) {
		day.Locations = append(day.Locations, cleanText(cell.Text()))
	})

	for i := 1; i < rows.Length(); i++ {
		slot, err := parseSlot(rows.Eq(i), day)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if slot != nil {
			day.Slots = append(day.Slots, *slot)
		}
	}

	return day, nil
}

// parseSlot reads one body row; rows without cells yield nil
func parseSlot(row *goquery.Selection, day *schedule.Day) (*schedule.Slot, error) {
	cells := row.Children()
	if cells.Length() == 0 {
		return nil, nil
	}

	start, end, err := schedule.ParseTimeRange(cleanText(cells.First().Text()))
	if err != nil {
		return nil, err
	}
	slot := &schedule.Slot{Start: start, End: end}

	cells = cells.Slice(1, goquery.ToEnd)
	if cells.Length() > len(day.Locations) {
		return nil, fmt.Errorf("%w: %d cells, %d locations", ErrColumnMismatch, cells.Length(), len(day.Locations))
	}

	for i := 0; i < cells.Length(); i++ {
		location := day.Locations[i]
		sessions, err := parseCell(cells.Eq(i))
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", location, err)
		}

		for _, s := range sessions {
			logger.Info("Found session", logger.Fields{
				"day":      day.Number,
				"start":    slot.Start,
				"location": location,
				"title":    s.Title,
			})
		}

		slot.Cells = append(slot.Cells, schedule.Cell{
			Location: location,
			Sessions: sessions,
		})
	}

	return slot, nil
}

// parseCell pairs session headings with descriptor paragraphs in document order.
// Level-2 headings are preferred; cells without any fall back to level-4.
func parseCell(cell *goquery.Selection) ([]schedule.Session, error) {
	titles := cell.Find("h2")
	if titles.Length() == 0 {
		titles = cell.Find("h4")
	}
	paragraphs := cell.Find("p")

	sessions := make([]schedule.Session, 0, titles.Length())
	for i := 0; i < titles.Length(); i++ {
		session := schedule.Session{Title: cleanText(titles.Eq(i).Text())}

		if i < paragraphs.Length() {
			info, err := schedule.ParseSpeakers(cleanText(paragraphs.Eq(i).Text()))
			if err != nil {
				return nil, fmt.Errorf("session %q: %w", session.Title, err)
			}
			session.Speakers = info.Speakers
			session.Level = info.Level
			session.Timing = info.Timing
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

// cleanText collapses the whitespace HTML indentation leaves in text content
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
