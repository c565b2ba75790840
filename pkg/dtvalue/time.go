package dtvalue

// ParseTime parses the strict TM form "HHMMSS.FFFFFF". Shorter
// well-formed prefixes of exactly 2, 4, or 6 bytes fail with
// IncompleteValueError naming the next missing component; any other
// length short of a full fractional value (including well-formed-looking
// odd lengths like 3, 5, or 7 bytes) fails with ErrUnexpectedEndOfInput,
// since it can't be unambiguously matched to a supported prefix length.
// Returns the remainder of buf after the fraction digits, which DICOM
// tolerates containing trailing garbage.
func ParseTime(buf []byte) (StrictTime, []byte, error) {
	if len(buf) < 2 {
		return StrictTime{}, buf, ErrUnexpectedEndOfInput
	}
	hour, err := readNumber(buf[0:2])
	if err != nil {
		return StrictTime{}, buf, err
	}
	if hour < 0 || hour > 23 {
		return StrictTime{}, buf, &InvalidComponentError{Component: ComponentHour, Value: hour}
	}
	if len(buf) == 2 {
		return StrictTime{}, nil, &IncompleteValueError{Component: ComponentMinute}
	}
	if len(buf) < 4 {
		return StrictTime{}, buf, ErrUnexpectedEndOfInput
	}

	minute, err := readNumber(buf[2:4])
	if err != nil {
		return StrictTime{}, buf, err
	}
	if minute < 0 || minute > 59 {
		return StrictTime{}, buf, &InvalidComponentError{Component: ComponentMinute, Value: minute}
	}
	if len(buf) == 4 {
		return StrictTime{}, nil, &IncompleteValueError{Component: ComponentSecond}
	}
	if len(buf) < 6 {
		return StrictTime{}, buf, ErrUnexpectedEndOfInput
	}

	second, err := readNumber(buf[4:6])
	if err != nil {
		return StrictTime{}, buf, err
	}
	if second < 0 || second > 60 {
		return StrictTime{}, buf, &InvalidComponentError{Component: ComponentSecond, Value: second}
	}
	if len(buf) == 6 {
		return StrictTime{}, nil, &IncompleteValueError{Component: ComponentFraction}
	}
	if len(buf) < 8 {
		return StrictTime{}, buf, ErrUnexpectedEndOfInput
	}

	if buf[6] != '.' {
		return StrictTime{}, buf, &FractionDelimiterError{Value: buf[6]}
	}

	digits := 0
	frac := 0
	for digits < 6 && 7+digits < len(buf) && buf[7+digits] >= '0' && buf[7+digits] <= '9' {
		frac = frac*10 + int(buf[7+digits]-'0')
		digits++
	}
	if digits == 0 {
		return StrictTime{}, buf, ErrUnexpectedEndOfInput
	}
	micros := rightPadFraction(frac, digits)

	return StrictTime{Hour: hour, Minute: minute, Second: second, Micros: micros}, buf[7+digits:], nil
}

// ParseTimePartial parses the partial TM grammar greedily, mirroring
// ParseDatePartial's "consume what reads and validates, stop at the first
// component that fails to read" contract. When a trailing fractional
// component is present it is stored exactly as parsed (see
// PartialTime.FracDigits) rather than right-padded to microseconds.
func ParseTimePartial(buf []byte) (PartialTime, []byte, error) {
	if len(buf) < 2 {
		return PartialTime{}, buf, ErrUnexpectedEndOfInput
	}
	hour, err := readNumber(buf[0:2])
	if err != nil {
		return PartialTime{}, buf, err
	}
	if hour < 0 || hour > 23 {
		return PartialTime{}, buf, &InvalidComponentError{Component: ComponentHour, Value: hour}
	}
	rest := buf[2:]
	result := PartialTime{Precision: Hour, HourValue: hour}

	if len(rest) < 2 {
		return result, rest, nil
	}
	minute, err := readNumber(rest[0:2])
	if err != nil {
		return result, rest, nil
	}
	if minute < 0 || minute > 59 {
		return PartialTime{}, buf, &InvalidComponentError{Component: ComponentMinute, Value: minute}
	}
	rest = rest[2:]
	result = PartialTime{Precision: HourMinute, HourValue: hour, MinuteValue: minute}

	if len(rest) < 2 {
		return result, rest, nil
	}
	second, err := readNumber(rest[0:2])
	if err != nil {
		return result, rest, nil
	}
	if second < 0 || second > 60 {
		return PartialTime{}, buf, &InvalidComponentError{Component: ComponentSecond, Value: second}
	}
	rest = rest[2:]
	result = PartialTime{Precision: HourMinuteSecond, HourValue: hour, MinuteValue: minute, SecondValue: second}

	if len(rest) < 1 || rest[0] != '.' {
		return result, rest, nil
	}
	rest = rest[1:]
	digits := 0
	frac := 0
	for digits < 6 && digits < len(rest) && rest[digits] >= '0' && rest[digits] <= '9' {
		frac = frac*10 + int(rest[digits]-'0')
		digits++
	}
	if digits == 0 {
		// '.' present but no digits follow: not a valid fraction, so the
		// second-precision result already computed stands and the '.' is
		// left unconsumed in the tail.
		return result, appendByte(rest, '.'), nil
	}
	result = PartialTime{
		Precision:   HourMinuteSecondFraction,
		HourValue:   hour,
		MinuteValue: minute,
		SecondValue: second,
		Frac:        frac,
		FracDigits:  digits,
	}
	return result, rest[digits:], nil
}

// appendByte reconstructs a one-byte-prefixed remainder slice; used only by
// the fraction-delimiter-with-no-digits edge case above.
func appendByte(rest []byte, b byte) []byte {
	out := make([]byte, 0, len(rest)+1)
	out = append(out, b)
	out = append(out, rest...)
	return out
}
