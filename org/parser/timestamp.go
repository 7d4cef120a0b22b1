package parser

import (
	"strconv"
	"strings"
)

// TimestampKind distinguishes active (<...>) from inactive ([...])
// timestamps and their range forms.
type TimestampKind int

const (
	TimestampActive TimestampKind = iota
	TimestampInactive
	TimestampActiveRange
	TimestampInactiveRange
)

func (k TimestampKind) String() string {
	switch k {
	case TimestampActive:
		return "active"
	case TimestampInactive:
		return "inactive"
	case TimestampActiveRange:
		return "active-range"
	case TimestampInactiveRange:
		return "inactive-range"
	default:
		return "unknown"
	}
}

// Timestamp is a parsed Org timestamp. Hour is -1 when the timestamp
// carries no time of day.
type Timestamp struct {
	Kind TimestampKind

	// Raw is the matched source text, brackets included.
	Raw string

	Begin int
	End   int

	Year  int
	Month int
	Day   int

	// DayName is the optional weekday annotation, e.g. "Mon".
	DayName string

	Hour   int
	Minute int

	// EndHour/EndMinute are set for hh:mm-hh:mm spans; -1 otherwise.
	EndHour   int
	EndMinute int

	// Repeater and Delay keep their cookie text, e.g. "+1w" or "-2d".
	Repeater string
	Delay    string

	// RangeEnd is the second timestamp of a "--" range.
	RangeEnd *Timestamp
}

// TimestampParser turns a text span into a timestamp reference. It returns
// the parsed timestamp and the offset of the first byte after it. A false
// result means no timestamp starts at beg; that is a normal outcome.
type TimestampParser func(input []byte, beg, limit int) (*Timestamp, int, bool)

// ParseTimestamp is the built-in TimestampParser.
func ParseTimestamp(input []byte, beg, limit int) (*Timestamp, int, bool) {
	ts, next, ok := parseSingleTimestamp(input, beg, limit)
	if !ok {
		return nil, beg, false
	}
	// A "--" joining two timestamps of the same flavor makes a range.
	if next+1 < limit && input[next] == '-' && input[next+1] == '-' {
		end, after, ok := parseSingleTimestamp(input, next+2, limit)
		if ok && sameFlavor(ts.Kind, end.Kind) {
			ts.RangeEnd = end
			ts.End = after
			ts.Raw = string(input[beg:after])
			if ts.Kind == TimestampActive {
				ts.Kind = TimestampActiveRange
			} else {
				ts.Kind = TimestampInactiveRange
			}
			return ts, after, true
		}
	}
	return ts, next, true
}

func parseSingleTimestamp(input []byte, beg, limit int) (*Timestamp, int, bool) {
	if limit > len(input) {
		limit = len(input)
	}
	if beg >= limit {
		return nil, beg, false
	}
	m := reTimestamp.FindSubmatchIndex(input[beg:limit])
	if m == nil || m[0] != 0 {
		return nil, beg, false
	}
	open := input[beg+m[2]]
	closing := input[beg+m[16]]
	if (open == '<') != (closing == '>') {
		return nil, beg, false
	}
	ts := &Timestamp{
		Kind:    TimestampActive,
		Raw:     string(input[beg : beg+m[1]]),
		Begin:   beg,
		End:     beg + m[1],
		Hour:    -1,
		Minute:  -1,
		EndHour: -1, EndMinute: -1,
	}
	if open == '[' {
		ts.Kind = TimestampInactive
	}
	date := string(input[beg+m[4] : beg+m[5]])
	ts.Year, _ = strconv.Atoi(date[:4])
	ts.Month, _ = strconv.Atoi(date[5:7])
	ts.Day, _ = strconv.Atoi(date[8:10])
	if m[6] >= 0 {
		ts.DayName = strings.TrimSpace(string(input[beg+m[6] : beg+m[7]]))
	}
	if m[8] >= 0 {
		ts.Hour, ts.Minute = parseClock(string(input[beg+m[8] : beg+m[9]]))
	}
	if m[10] >= 0 {
		ts.EndHour, ts.EndMinute = parseClock(string(input[beg+m[10] : beg+m[11]]))
	}
	if m[12] >= 0 {
		ts.Repeater = string(input[beg+m[12] : beg+m[13]])
	}
	if m[14] >= 0 {
		ts.Delay = string(input[beg+m[14] : beg+m[15]])
	}
	return ts, ts.End, true
}

func parseClock(s string) (hour, minute int) {
	i := strings.IndexByte(s, ':')
	hour, _ = strconv.Atoi(s[:i])
	minute, _ = strconv.Atoi(s[i+1:])
	return hour, minute
}

func sameFlavor(a, b TimestampKind) bool {
	return (a == TimestampActive) == (b == TimestampActive)
}
