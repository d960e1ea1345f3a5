package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedSpeaker is returned when a speaker line matches a known
	// shape but cannot be split into names, level or timing.
	ErrMalformedSpeaker = errors.New("malformed speaker line")

	// ErrMalformedTimeRange is returned when a time label has more than one range separator.
	ErrMalformedTimeRange = errors.New("malformed time range")
)

const (
	levelSeparator   = " / "
	timingSeparator  = " ("
	speakerSeparator = " , "
	speakerPrefix    = "by "
	rangeSeparator   = " - "
)

// Speaker is a person presenting a session
type Speaker struct {
	FirstName string
	LastName  string
}

// FullName joins first and last name with a single space
func (s Speaker) FullName() string {
	return s.FirstName + " " + s.LastName
}

// SpeakerInfo is what a session's descriptor paragraph says about its speakers
type SpeakerInfo struct {
	Speakers []Speaker
	Level    string
	Timing   string
}

// ParseSpeakers parses the paragraph printed under a session title.
// Two shapes are understood:
//
//	by Jane Doe / Intermediate
//	by A B , C D / Advanced
//	John Smith (Keynote)
//
// Any other text carries no speaker data and yields an empty SpeakerInfo.
// A line that has one of the shapes but cannot be split is an error.
func ParseSpeakers(text string) (SpeakerInfo, error) {
	text = strings.TrimSpace(text)

	switch {
	case strings.Contains(text, levelSeparator):
		parts := strings.Split(text, levelSeparator)
		if len(parts) != 2 {
			return SpeakerInfo{}, fmt.Errorf("%w: %q has %d level separators", ErrMalformedSpeaker, text, len(parts)-1)
		}

		names := strings.TrimPrefix(parts[0], speakerPrefix)
		var list []string
		if strings.Contains(names, ",") {
			list = strings.Split(names, speakerSeparator)
		} else {
			list = []string{names}
		}

		info := SpeakerInfo{Level: parts[1]}
		for _, name := range list {
			speaker, err := splitName(name)
			if err != nil {
				return SpeakerInfo{}, err
			}
			info.Speakers = append(info.Speakers, speaker)
		}
		return info, nil

	case strings.Contains(text, timingSeparator):
		parts := strings.Split(text, timingSeparator)
		if len(parts) != 2 {
			return SpeakerInfo{}, fmt.Errorf("%w: %q has %d timing separators", ErrMalformedSpeaker, text, len(parts)-1)
		}

		speaker, err := splitName(strings.TrimPrefix(parts[0], speakerPrefix))
		if err != nil {
			return SpeakerInfo{}, err
		}
		return SpeakerInfo{
			Speakers: []Speaker{speaker},
			Timing:   strings.TrimSuffix(parts[1], ")"),
		}, nil
	}

	return SpeakerInfo{}, nil
}

// splitName splits on the first space; everything after it is the last name
func splitName(name string) (Speaker, error) {
	first, last, ok := strings.Cut(name, " ")
	if !ok {
		return Speaker{}, fmt.Errorf("%w: name %q has no last name", ErrMalformedSpeaker, name)
	}
	return Speaker{FirstName: first, LastName: last}, nil
}

// ParseTimeRange splits a slot label such as "09:00 - 09:30".
// A label without a separator is all start time.
func ParseTimeRange(label string) (start, end string, err error) {
	label = strings.TrimSpace(label)
	parts := strings.Split(label, rangeSeparator)
	switch len(parts) {
	case 1:
		return label, "", nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrMalformedTimeRange, label)
	}
}
