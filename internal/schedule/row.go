package schedule

import (
	"github.com/pfrederiksen/ploneconf-schedule/internal/slug"
)

// DefaultRoot is the Plone site path every imported item lives under
const DefaultRoot = "Plone2/"

// Kind is the value of the @type column
type Kind string

const (
	KindConference Kind = "conference"
	KindAttendees  Kind = "attendees"
	KindSpeakers   Kind = "speakers"
	KindLocations  Kind = "locations"
	KindLocation   Kind = "location"
	KindSession    Kind = "session"
	KindSpeaker    Kind = "speaker"
)

// Columns is the header of the import file. The importer matches columns by
// name, so the order only has to stay stable between runs.
var Columns = []string{
	"@type",
	"end",
	"start",
	"title",
	"first_name",
	"last_name",
	"text",
	"level",
	"timing",
	"path",
	"id",
	"UID",
	"subjects",
	"version",
	"rights",
	"is_folderish",
	"contributors",
	"@components",
	"review_state",
	"expires",
	"effective",
	"language",
	"created",
	"modified",
	"allow_discussion",
	"creators",
	"description",
	"exclude_from_nav",
	"relatedItems",
	"nextPreviousEnabled",
	"open_end",
	"confirm_password",
	"sync_uid",
	"email",
	"bio",
	"password",
	"homepage",
	"whole_day",
	"presenting",
	"event_url",
	"contact_name",
	"recurrence",
	"versioning_enabled",
	"location",
	"contact_phone",
	"contact_email",
}

var columnIndex = func() map[string]int {
	idx := make(map[string]int, len(Columns))
	for i, c := range Columns {
		idx[c] = i
	}
	return idx
}()

// Row is one line of the import file. Only the columns the importer needs are
// modelled; everything else is written empty.
type Row struct {
	Type      Kind
	Title     string
	ID        string
	Path      string
	Start     string
	End       string
	FirstName string
	LastName  string
	Level     string
	Timing    string
	Location  string
}

// Record returns the row as a CSV record aligned with Columns
func (r Row) Record() []string {
	rec := make([]string, len(Columns))
	set := func(col, value string) {
		rec[columnIndex[col]] = value
	}
	set("@type", string(r.Type))
	set("title", r.Title)
	set("id", r.ID)
	set("path", r.Path)
	set("start", r.Start)
	set("end", r.End)
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("level", r.Level)
	set("timing", r.Timing)
	set("location", r.Location)
	return rec
}

// Tree builds rows for the folder hierarchy below a site root
type Tree struct {
	Root string
}

// NewTree returns a Tree rooted at root, or DefaultRoot when root is empty
func NewTree(root string) Tree {
	if root == "" {
		root = DefaultRoot
	}
	return Tree{Root: root}
}

func (t Tree) conference() string {
	return t.Root + "conference"
}

// Containers returns the top-level folders, parents first
func (t Tree) Containers() []Row {
	folders := []struct {
		title string
		kind  Kind
		path  string
	}{
		{"Conference", KindConference, t.conference()},
		{"Attendees", KindAttendees, t.conference() + "/attendees"},
		{"Speakers", KindSpeakers, t.conference() + "/speakers"},
		{"Locations", KindLocations, t.conference() + "/locations"},
	}

	rows := make([]Row, 0, len(folders))
	for _, f := range folders {
		rows = append(rows, Row{
			Type:  f.kind,
			Title: f.title,
			ID:    string(f.kind),
			Path:  f.path,
		})
	}
	return rows
}

// Location returns the row for a room or hall
func (t Tree) Location(name string) Row {
	return Row{
		Type:     KindLocation,
		Title:    name,
		ID:       slug.Make(name),
		Path:     t.conference() + "/locations/",
		Location: name,
	}
}

// SessionPath returns the folder sessions held at location are created in
func (t Tree) SessionPath(location string) string {
	return t.conference() + "/locations/" + slug.Make(location) + "/"
}

// Session returns the row for a session held at location during slot
func (t Tree) Session(location string, slot Slot, session Session) Row {
	return Row{
		Type:  KindSession,
		Title: session.Title,
		ID:    slug.Make(session.Title),
		Path:  t.SessionPath(location),
		Start: slot.Start,
		End:   slot.End,
	}
}

// Speaker returns the row for one speaker of session
func (t Tree) Speaker(speaker Speaker, session Session) Row {
	name := speaker.FullName()
	return Row{
		Type:      KindSpeaker,
		Title:     name,
		ID:        slug.Make(name),
		Path:      t.conference() + "/speakers/",
		FirstName: speaker.FirstName,
		LastName:  speaker.LastName,
		Level:     session.Level,
		Timing:    session.Timing,
	}
}
