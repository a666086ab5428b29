// Package captions converts raw caption-track text (VTT/SRT style) into
// plain spoken text, a total spoken duration, and per-cue time spans.
package captions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Cue is a single caption entry. Times are seconds from track start.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

// Transcript is an ordered cue sequence plus the derived plain text and
// duration. DurationSec is always >= 0.1 so downstream rate math never
// divides by zero.
type Transcript struct {
	Cues        []Cue
	PlainText   string
	DurationSec float64
}

var ErrEmptyInput = errors.New("captions: empty input")

// MalformedTimestampError aborts the whole parse; a timing line that cannot
// be read leaves the duration undefined, so there is nothing to recover.
type MalformedTimestampError struct {
	Line string
	Err  error
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("captions: malformed timestamp in line %q: %v", e.Line, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error { return e.Err }

const timingSeparator = "-->"

// Parse walks the track line by line. Blank lines and pure-digit cue index
// lines are skipped; timing lines update the transcript span; every other
// line is appended to the plain text in source order.
//
// The transcript start is assigned whenever the running start is still 0.0,
// and the end is overwritten by every timing line. Both rules are kept
// exactly as the upstream contract defines them: a track whose first cue
// starts at 0.000 takes its start from the first cue that does not, and the
// last cue seen always ends the transcript.
func Parse(raw string) (*Transcript, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	var (
		lines     []string
		cues      []Cue
		startTime float64
		endTime   float64
	)

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, timingSeparator) {
			parts := strings.SplitN(line, timingSeparator, 2)
			start, err := parseTimestamp(parts[0])
			if err != nil {
				return nil, &MalformedTimestampError{Line: line, Err: err}
			}
			end, err := parseTimestamp(parts[1])
			if err != nil {
				return nil, &MalformedTimestampError{Line: line, Err: err}
			}
			if startTime == 0 {
				startTime = start
			}
			endTime = end
			cues = append(cues, Cue{Start: start, End: end})
			continue
		}
		if isDigits(line) {
			continue
		}
		lines = append(lines, line)
		if len(cues) > 0 {
			c := &cues[len(cues)-1]
			if c.Text == "" {
				c.Text = line
			} else {
				c.Text += "\n" + line
			}
		}
	}

	duration := endTime - startTime
	if duration < 0.1 {
		duration = 0.1
	}

	return &Transcript{
		Cues:        cues,
		PlainText:   strings.Join(lines, "\n"),
		DurationSec: duration,
	}, nil
}

// parseTimestamp reads HH:MM:SS.mmm (comma decimal separator accepted).
func parseTimestamp(ts string) (float64, error) {
	ts = strings.TrimSpace(ts)
	parts := strings.SplitN(ts, ":", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS.mmm, got %q", ts)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("bad hours in %q: %w", ts, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("bad minutes in %q: %w", ts, err)
	}
	s, err := strconv.ParseFloat(strings.ReplaceAll(parts[2], ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("bad seconds in %q: %w", ts, err)
	}
	return float64(h)*3600 + float64(m)*60 + s, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
