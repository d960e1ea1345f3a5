package export

import (
	"github.com/pfrederiksen/ploneconf-schedule/internal/logger"
	"github.com/pfrederiksen/ploneconf-schedule/internal/schedule"
)

// Counts is the number of rows written per kind
type Counts struct {
	Containers int `json:"containers"`
	Locations  int `json:"locations"`
	Sessions   int `json:"sessions"`
	Speakers   int `json:"speakers"`
}

// Total returns the number of rows written, excluding the header
func (c Counts) Total() int {
	return c.Containers + c.Locations + c.Sessions + c.Speakers
}

// Emitter turns parsed days into import rows. It remembers which locations
// have been written so each appears once per run.
type Emitter struct {
	w      *Writer
	tree   schedule.Tree
	seen   map[string]bool
	order  []string
	counts Counts
}

// NewEmitter creates an Emitter writing rows for tree to w
func NewEmitter(w *Writer, tree schedule.Tree) *Emitter {
	return &Emitter{
		w:    w,
		tree: tree,
		seen: make(map[string]bool),
	}
}

// Containers writes the top-level folders
func (e *Emitter) Containers() error {
	for _, row := range e.tree.Containers() {
		if err := e.write(row); err != nil {
			return err
		}
	}
	return nil
}

// Day writes the rows for one parsed day. Cells are visited in table order;
// a location row is written before the first session held there.
func (e *Emitter) Day(day *schedule.Day) error {
	for _, slot := range day.Slots {
		for _, cell := range slot.Cells {
			if !e.seen[cell.Location] {
				if err := e.write(e.tree.Location(cell.Location)); err != nil {
					return err
				}
				e.seen[cell.Location] = true
				e.order = append(e.order, cell.Location)
			}

			for _, session := range cell.Sessions {
				if err := e.write(e.tree.Session(cell.Location, slot, session)); err != nil {
					return err
				}
				for _, speaker := range session.Speakers {
					if err := e.write(e.tree.Speaker(speaker, session)); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// Counts returns the rows written so far
func (e *Emitter) Counts() Counts {
	return e.counts
}

// Locations returns the names of the locations written so far, in order
func (e *Emitter) Locations() []string {
	return append([]string(nil), e.order...)
}

func (e *Emitter) write(row schedule.Row) error {
	if err := e.w.Write(row); err != nil {
		return err
	}

	switch row.Type {
	case schedule.KindLocation:
		e.counts.Locations++
	case schedule.KindSession:
		e.counts.Sessions++
	case schedule.KindSpeaker:
		e.counts.Speakers++
	default:
		e.counts.Containers++
	}

	logger.IncrCounter("rows." + string(row.Type))
	logger.Debug("Wrote row", logger.Fields{
		"type": row.Type,
		"id":   row.ID,
		"path": row.Path,
	})
	return nil
}
