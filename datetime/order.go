package datetime

// Compare orders two Datetime values. ok is false unless both a and b are
// offset date-times that ToUTC accepts: TOML defines an ordering only for that shape, since
// comparing local values would otherwise silently assume a shared time
// zone. When ok, result is negative, zero, or positive as a is before,
// equal to, or after b.
func Compare(a, b Datetime) (result int, ok bool) {
	ua, oka := a.ToUTC()
	ub, okb := b.ToUTC()
	if !oka || !okb {
		return 0, false
	}

	type tuple [7]int
	at := tuple{
		int(ua.Date.Year), int(ua.Date.Month), int(ua.Date.Day),
		int(ua.Time.Hour), int(ua.Time.Minute), int(ua.Time.Second), int(ua.Time.Nanosecond),
	}
	bt := tuple{
		int(ub.Date.Year), int(ub.Date.Month), int(ub.Date.Day),
		int(ub.Time.Hour), int(ub.Time.Minute), int(ub.Time.Second), int(ub.Time.Nanosecond),
	}
	for i := range at {
		switch {
		case at[i] < bt[i]:
			return -1, true
		case at[i] > bt[i]:
			return 1, true
		}
	}
	return 0, true
}
