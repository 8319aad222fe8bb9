package datetime

import (
	"fmt"
	"strings"
)

// Date is a calendar date: Year 0000-9999, Month 1-12, Day 1-31. Parse
// checks only that coarse day bound; a day past lastDay(Year, Month) is
// rejected by ToUTC.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// Time is a time of day. Second is kept in 0-59: parseTime rejects a
// leap second at 60, although TOML's grammar allows one. Nanosecond holds
// a truncated (not rounded) fractional second.
type Time struct {
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
}

// Offset is a UTC offset: either Z (zero offset, written "Z"/"z"), or a
// signed hours/minutes pair written "+HH:MM"/"-HH:MM". Hours carries the
// sign; Minutes is always a non-negative magnitude.
type Offset struct {
	Z       bool
	Hours   int8
	Minutes uint8
}

// Datetime is one value from any of RFC 3339's four shapes. Exactly which
// shape it holds is determined by which of Date/Time/Offset are non-nil;
// see IsOffsetDatetime and friends. A zero Datetime (all three nil) is
// invalid - see IsInvalid.
type Datetime struct {
	Date   *Date
	Time   *Time
	Offset *Offset
}

// IsOffsetDatetime reports whether d has a date, a time, and an offset -
// the only shape ToUTC and Compare accept.
func (d Datetime) IsOffsetDatetime() bool {
	return d.Date != nil && d.Time != nil && d.Offset != nil
}

// IsLocalDatetime reports whether d has a date and a time but no offset.
func (d Datetime) IsLocalDatetime() bool {
	return d.Date != nil && d.Time != nil && d.Offset == nil
}

// IsLocalDate reports whether d has only a date.
func (d Datetime) IsLocalDate() bool {
	return d.Date != nil && d.Time == nil && d.Offset == nil
}

// IsLocalTime reports whether d has only a time.
func (d Datetime) IsLocalTime() bool {
	return d.Date == nil && d.Time != nil && d.Offset == nil
}

// IsInvalid reports whether d matches none of the four valid shapes (for
// example a bare offset with neither a date nor a time).
func (d Datetime) IsInvalid() bool {
	return !d.IsOffsetDatetime() && !d.IsLocalDatetime() && !d.IsLocalDate() && !d.IsLocalTime()
}

// ParseError is returned by Parse for any malformed input. It carries no
// detail beyond "this wasn't a valid RFC 3339 datetime/date/time" -
// mirroring the source model's own private, detail-free error type.
type ParseError struct{}

func (ParseError) Error() string {
	return "invalid datetime"
}

var errInvalid error = ParseError{}

// Parse parses one of the four RFC 3339 shapes TOML allows: an offset
// date-time, a local date-time, a local date, or a local time.
func Parse(s string) (Datetime, error) {
	b := []byte(s)

	if len(b) >= 3 && b[2] == ':' {
		tm, n, err := parseTime(b)
		if err != nil {
			return Datetime{}, err
		}
		if n != len(b) {
			return Datetime{}, errInvalid
		}
		return Datetime{Time: &tm}, nil
	}

	if len(b) < 10 {
		return Datetime{}, errInvalid
	}
	year, ok := digitsN(b[0:4])
	if !ok || b[4] != '-' {
		return Datetime{}, errInvalid
	}
	month, ok := digits2(b[5:7])
	if !ok || b[7] != '-' {
		return Datetime{}, errInvalid
	}
	day, ok := digits2(b[8:10])
	if !ok {
		return Datetime{}, errInvalid
	}
	if month < 1 || month > 12 {
		return Datetime{}, errInvalid
	}
	// Only the coarse 1-31 bound is checked here; the finer month-length
	// check (e.g. day 31 in February) is deferred to normalization, so a
	// value like 2004-02-30 parses and is rejected later.
	if day < 1 || day > 31 {
		return Datetime{}, errInvalid
	}
	date := Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}

	rest := b[10:]
	if len(rest) == 0 {
		return Datetime{Date: &date}, nil
	}
	switch rest[0] {
	case 'T', 't', ' ':
	default:
		return Datetime{}, errInvalid
	}
	rest = rest[1:]

	tm, n, err := parseTime(rest)
	if err != nil {
		return Datetime{}, err
	}
	rest = rest[n:]

	dt := Datetime{Date: &date, Time: &tm}
	if len(rest) == 0 {
		return dt, nil
	}

	off, n, err := parseOffset(rest)
	if err != nil {
		return Datetime{}, err
	}
	rest = rest[n:]
	if len(rest) != 0 {
		return Datetime{}, errInvalid
	}
	dt.Offset = &off
	return dt, nil
}

func parseTime(b []byte) (Time, int, error) {
	if len(b) < 8 || b[2] != ':' || b[5] != ':' {
		return Time{}, 0, errInvalid
	}
	hour, ok := digits2(b[0:2])
	if !ok || hour > 24 {
		return Time{}, 0, errInvalid
	}
	minute, ok := digits2(b[3:5])
	if !ok || minute > 59 {
		return Time{}, 0, errInvalid
	}
	// TOML's grammar allows a leap second (:60); this parser doesn't -
	// see the package-level Open Question recorded in DESIGN.md.
	second, ok := digits2(b[6:8])
	if !ok || second > 59 {
		return Time{}, 0, errInvalid
	}

	n := 8
	var nanosecond uint32
	if len(b) > n && b[n] == '.' {
		n++
		start := n
		for n < len(b) && isDigit(b[n]) {
			n++
		}
		if n == start {
			return Time{}, 0, errInvalid
		}
		digits := b[start:n]
		if len(digits) > 9 {
			digits = digits[:9]
		}
		var val uint32
		for _, c := range digits {
			val = val*10 + uint32(c-'0')
		}
		for i := len(digits); i < 9; i++ {
			val *= 10
		}
		nanosecond = val
	}

	return Time{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, n, nil
}

func parseOffset(b []byte) (Offset, int, error) {
	if len(b) == 0 {
		return Offset{}, 0, errInvalid
	}
	switch b[0] {
	case 'Z', 'z':
		return Offset{Z: true}, 1, nil
	case '+', '-':
	default:
		return Offset{}, 0, errInvalid
	}
	if len(b) < 6 {
		return Offset{}, 0, errInvalid
	}
	hh, ok := digits2(b[1:3])
	if !ok || b[3] != ':' {
		return Offset{}, 0, errInvalid
	}
	mm, ok := digits2(b[4:6])
	if !ok {
		return Offset{}, 0, errInvalid
	}
	hours := int8(hh)
	if b[0] == '-' {
		hours = -hours
	}
	return Offset{Hours: hours, Minutes: mm}, 6, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func digit(b byte) (uint8, bool) {
	if !isDigit(b) {
		return 0, false
	}
	return b - '0', true
}

func digits2(b []byte) (uint8, bool) {
	d1, ok1 := digit(b[0])
	d2, ok2 := digit(b[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return d1*10 + d2, true
}

func digitsN(b []byte) (uint16, bool) {
	var v uint16
	for _, c := range b {
		d, ok := digit(c)
		if !ok {
			return 0, false
		}
		v = v*10 + uint16(d)
	}
	return v, true
}

// String renders d back to its RFC 3339 text form.
func (d Datetime) String() string {
	var sb strings.Builder
	if d.Date != nil {
		fmt.Fprintf(&sb, "%04d-%02d-%02d", d.Date.Year, d.Date.Month, d.Date.Day)
		if d.Time != nil {
			sb.WriteByte('T')
		}
	}
	if d.Time != nil {
		fmt.Fprintf(&sb, "%02d:%02d:%02d", d.Time.Hour, d.Time.Minute, d.Time.Second)
		if d.Time.Nanosecond > 0 {
			frac := strings.TrimRight(fmt.Sprintf("%09d", d.Time.Nanosecond), "0")
			sb.WriteByte('.')
			sb.WriteString(frac)
		}
	}
	if d.Offset != nil {
		if d.Offset.Z {
			sb.WriteByte('Z')
		} else {
			sign := byte('+')
			hours := d.Offset.Hours
			if hours < 0 {
				sign = '-'
				hours = -hours
			}
			fmt.Fprintf(&sb, "%c%02d:%02d", sign, hours, d.Offset.Minutes)
		}
	}
	return sb.String()
}
