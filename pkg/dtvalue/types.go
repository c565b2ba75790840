package dtvalue

import "fmt"

// DatePrecision names which components of a PartialDate are populated.
type DatePrecision int

const (
	// Year means only the year is known.
	Year DatePrecision = iota
	// YearMonth means year and month are known.
	YearMonth
	// YearMonthDay means the full calendar date is known.
	YearMonthDay
)

// PartialDate is a precision-tagged calendar date: exactly the components
// up to Precision are meaningful, the rest are zero. Day-of-month validity
// against month length is deliberately not enforced here — see
// ParseDatePartial.
type PartialDate struct {
	Precision  DatePrecision
	YearValue  int
	MonthValue int
	DayValue   int
}

func (d PartialDate) String() string {
	switch d.Precision {
	case Year:
		return fmt.Sprintf("%04d", d.YearValue)
	case YearMonth:
		return fmt.Sprintf("%04d-%02d", d.YearValue, d.MonthValue)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.YearValue, d.MonthValue, d.DayValue)
	}
}

// Range returns the inclusive [lower, upper] calendar-date bracket a
// PartialDate denotes, expanding absent components to their widest valid
// span. Both bounds are returned as StrictDate, with day-of-month clamped
// to the last real day of the month for the upper bound.
func (d PartialDate) Range() (lower, upper StrictDate) {
	switch d.Precision {
	case Year:
		return StrictDate{Year: d.YearValue, Month: 1, Day: 1},
			StrictDate{Year: d.YearValue, Month: 12, Day: 31}
	case YearMonth:
		return StrictDate{Year: d.YearValue, Month: d.MonthValue, Day: 1},
			StrictDate{Year: d.YearValue, Month: d.MonthValue, Day: daysInMonth(d.YearValue, d.MonthValue)}
	default:
		full := StrictDate{Year: d.YearValue, Month: d.MonthValue, Day: d.DayValue}
		return full, full
	}
}

// TimePrecision names which components of a PartialTime are populated.
type TimePrecision int

const (
	// Hour means only the hour is known.
	Hour TimePrecision = iota
	// HourMinute means hour and minute are known.
	HourMinute
	// HourMinuteSecond means hour, minute and second are known.
	HourMinuteSecond
	// HourMinuteSecondFraction means a fractional-seconds component is known too.
	HourMinuteSecondFraction
)

// PartialTime is a precision-tagged time of day. When Precision is
// HourMinuteSecondFraction, Frac holds the fractional value exactly as
// parsed (not right-padded) and FracDigits records how many significant
// decimal digits it carries — {Frac:5, FracDigits:1} (".5") is a distinct
// value from {Frac:500000, FracDigits:6} (".500000").
type PartialTime struct {
	Precision   TimePrecision
	HourValue   int
	MinuteValue int
	SecondValue int
	Frac        int
	FracDigits  int
}

func (t PartialTime) String() string {
	switch t.Precision {
	case Hour:
		return fmt.Sprintf("%02d", t.HourValue)
	case HourMinute:
		return fmt.Sprintf("%02d%02d", t.HourValue, t.MinuteValue)
	case HourMinuteSecond:
		return fmt.Sprintf("%02d%02d%02d", t.HourValue, t.MinuteValue, t.SecondValue)
	default:
		return fmt.Sprintf("%02d%02d%02d.%0*d", t.HourValue, t.MinuteValue, t.SecondValue, t.FracDigits, t.Frac)
	}
}

// Range returns the inclusive [lower, upper] microsecond-precision bracket
// a PartialTime denotes, expanding the unknown trailing components to
// their widest valid span.
func (t PartialTime) Range() (lower, upper StrictTime) {
	switch t.Precision {
	case Hour:
		return StrictTime{Hour: t.HourValue, Minute: 0, Second: 0, Micros: 0},
			StrictTime{Hour: t.HourValue, Minute: 59, Second: 59, Micros: 999999}
	case HourMinute:
		return StrictTime{Hour: t.HourValue, Minute: t.MinuteValue, Second: 0, Micros: 0},
			StrictTime{Hour: t.HourValue, Minute: t.MinuteValue, Second: 59, Micros: 999999}
	case HourMinuteSecond:
		return StrictTime{Hour: t.HourValue, Minute: t.MinuteValue, Second: t.SecondValue, Micros: 0},
			StrictTime{Hour: t.HourValue, Minute: t.MinuteValue, Second: t.SecondValue, Micros: 999999}
	default:
		micros := rightPadFraction(t.Frac, t.FracDigits)
		full := StrictTime{Hour: t.HourValue, Minute: t.MinuteValue, Second: t.SecondValue, Micros: micros}
		return full, full
	}
}

// PartialDateTime composes a PartialDate, an optional PartialTime, and a
// fixed UTC offset in seconds (|OffsetSeconds| < 24*3600).
type PartialDateTime struct {
	Date          PartialDate
	Time          *PartialTime
	OffsetSeconds int
}

// StrictDate is a fully specified Gregorian calendar date.
type StrictDate struct {
	Year, Month, Day int
}

func (d StrictDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// StrictTime is a fully specified time of day with microsecond precision.
type StrictTime struct {
	Hour, Minute, Second, Micros int
}

func (t StrictTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Micros)
}

// StrictDateTime composes a StrictDate, a StrictTime, and a fixed UTC
// offset in seconds.
type StrictDateTime struct {
	Date          StrictDate
	Time          StrictTime
	OffsetSeconds int
}

func (dt StrictDateTime) String() string {
	sign := "+"
	off := dt.OffsetSeconds
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("%s %s %s%02d%02d", dt.Date, dt.Time, sign, off/3600, (off%3600)/60)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func rightPadFraction(frac, digits int) int {
	for digits < 6 {
		frac *= 10
		digits++
	}
	return frac
}
