package dtvalue

// parseTZSuffix parses a "±HHMM" timezone suffix from the start of buf,
// returning the signed offset in seconds. It requires at least 5 bytes;
// bytes beyond the fifth are not examined, and neither datetime parser
// checks for them, so a trailing remainder after the suffix is ignored.
func parseTZSuffix(buf []byte) (int, error) {
	if len(buf) < 5 {
		return 0, ErrUnexpectedEndOfInput
	}
	var sign int
	switch buf[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, &InvalidTimeZoneSignError{Value: buf[0]}
	}
	hh, err := readNumber(buf[1:3])
	if err != nil {
		return 0, err
	}
	mm, err := readNumber(buf[3:5])
	if err != nil {
		return 0, err
	}
	return sign * (hh*3600 + mm*60), nil
}

// ParseDateTime parses the strict DT form: a strict date, a strict time,
// and an optional "±HHMM" offset suffix. When no suffix is present,
// defaultOffsetSeconds is used as-is; the host's local timezone is never
// consulted, so results are reproducible across machines.
func ParseDateTime(buf []byte, defaultOffsetSeconds int) (StrictDateTime, error) {
	date, err := ParseDate(buf)
	if err != nil {
		return StrictDateTime{}, err
	}
	if len(buf) < 8 {
		return StrictDateTime{}, ErrUnexpectedEndOfInput
	}
	rest := buf[8:]

	t, rest, err := ParseTime(rest)
	if err != nil {
		return StrictDateTime{}, err
	}

	offset := defaultOffsetSeconds
	if len(rest) > 0 {
		offset, err = parseTZSuffix(rest)
		if err != nil {
			return StrictDateTime{}, err
		}
	}

	return StrictDateTime{Date: date, Time: t, OffsetSeconds: offset}, nil
}

// ParseDateTimePartial parses the partial DT grammar: a partial date,
// optionally a partial time, and optionally a "±HHMM" offset suffix
// (falling back to defaultOffsetSeconds when absent). Unlike
// ParseDateTime, a failure to parse the time component is not fatal: it is
// treated as "no time present" and the date's remainder is used unchanged
// for the timezone-suffix attempt.
func ParseDateTimePartial(buf []byte, defaultOffsetSeconds int) (PartialDateTime, error) {
	date, rest, err := ParseDatePartial(buf)
	if err != nil {
		return PartialDateTime{}, err
	}

	var timePtr *PartialTime
	if t, tRest, terr := ParseTimePartial(rest); terr == nil {
		timePtr = &t
		rest = tRest
	}

	offset := defaultOffsetSeconds
	if len(rest) > 0 {
		offset, err = parseTZSuffix(rest)
		if err != nil {
			return PartialDateTime{}, err
		}
		const maxOffset = 24 * 3600
		if offset <= -maxOffset || offset >= maxOffset {
			return PartialDateTime{}, &InvalidComponentError{Component: ComponentUTCOffset, Value: offset}
		}
	}

	return PartialDateTime{Date: date, Time: timePtr, OffsetSeconds: offset}, nil
}
