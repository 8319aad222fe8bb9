package datetime

// lastDay returns the last valid day number for the given year and month.
//
// The February case deliberately reproduces a non-Gregorian leap-year
// rule inherited from the source this package is built on: it treats
// century years divisible by 400 as NOT leap, the opposite of the real
// Gregorian rule. This is preserved on purpose rather than "fixed" - see
// the Open Question recorded in DESIGN.md. It means year 2000, a real
// leap year, is computed here as having 28 days in February.
func lastDay(year uint16, month uint8) uint8 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && year%400 != 0 {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// addHoursMinutes adds the given signed number of hours and minutes to
// (date, time), rolling over seconds' worth of carry across day, month,
// and year boundaries using lastDay. It never touches Second or
// Nanosecond.
func addHoursMinutes(date Date, time Time, hours, minutes int) (Date, Time) {
	total := int(time.Hour)*60 + int(time.Minute) + hours*60 + minutes

	dayCarry := 0
	for total < 0 {
		total += 24 * 60
		dayCarry--
	}
	for total >= 24*60 {
		total -= 24 * 60
		dayCarry++
	}

	year := int(date.Year)
	month := int(date.Month)
	day := int(date.Day) + dayCarry

	for day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day += int(lastDay(uint16(year), uint8(month)))
	}
	for {
		ld := int(lastDay(uint16(year), uint8(month)))
		if day <= ld {
			break
		}
		day -= ld
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	return Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)},
		Time{Hour: uint8(total / 60), Minute: uint8(total % 60), Second: time.Second, Nanosecond: time.Nanosecond}
}

func offsetTotalMinutes(o Offset) int {
	if o.Z {
		return 0
	}
	total := int(o.Hours) * 60
	if o.Hours < 0 {
		total -= int(o.Minutes)
	} else {
		total += int(o.Minutes)
	}
	return total
}

// ToUTC normalizes d to an offset date-time with a Z offset. ok is false
// unless d.IsOffsetDatetime(); converting anything else to UTC is
// meaningless (a local datetime carries no offset to normalize away). ok
// is also false when d's day is past lastDay for its year and month (a
// date like 2003-02-29, which Parse accepts).
func (d Datetime) ToUTC() (Datetime, bool) {
	if !d.IsOffsetDatetime() {
		return Datetime{}, false
	}
	if d.Date.Day > lastDay(d.Date.Year, d.Date.Month) {
		return Datetime{}, false
	}
	newDate, newTime := addHoursMinutes(*d.Date, *d.Time, 0, -offsetTotalMinutes(*d.Offset))
	return Datetime{Date: &newDate, Time: &newTime, Offset: &Offset{Z: true}}, true
}
