package schedule

// Day is the parsed schedule table of one conference day
type Day struct {
	Number    int
	Locations []string // column headers, in column order
	Slots     []Slot
}

// Slot is one body row of the schedule table
type Slot struct {
	Start string
	End   string
	Cells []Cell
}

// Cell holds the sessions held at one location during a slot
type Cell struct {
	Location string
	Sessions []Session
}

// Session is a talk, training or keynote found in a cell
type Session struct {
	Title    string
	Speakers []Speaker
	Level    string
	Timing   string
}
