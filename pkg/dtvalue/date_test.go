package dtvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate([]byte("20180101"))
	require.NoError(t, err)
	assert.Equal(t, StrictDate{Year: 2018, Month: 1, Day: 1}, d)
}

func TestParseDate_IgnoresTrailingBytes(t *testing.T) {
	d, err := ParseDate([]byte("20180101xxxx"))
	require.NoError(t, err)
	assert.Equal(t, StrictDate{Year: 2018, Month: 1, Day: 1}, d)
}

func TestParseDate_NotLeapYear(t *testing.T) {
	_, err := ParseDate([]byte("20210229"))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDate_Incomplete(t *testing.T) {
	_, err := ParseDate([]byte("1902"))
	var incomplete *IncompleteValueError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, ComponentMonth, incomplete.Component)

	_, err = ParseDate([]byte("190208"))
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, ComponentDay, incomplete.Component)
}

func TestParseDate_InvalidComponent(t *testing.T) {
	_, err := ParseDate([]byte("19021515"))
	var invalid *InvalidComponentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, ComponentMonth, invalid.Component)
	assert.Equal(t, 15, invalid.Value)

	_, err = ParseDate([]byte("19021200"))
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, ComponentDay, invalid.Component)
	assert.Equal(t, 0, invalid.Value)

	_, err = ParseDate([]byte("19021232"))
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, ComponentDay, invalid.Component)
	assert.Equal(t, 32, invalid.Value)
}

func TestParseDatePartial(t *testing.T) {
	d, tail, err := ParseDatePartial([]byte("1914"))
	require.NoError(t, err)
	assert.Equal(t, PartialDate{Precision: Year, YearValue: 1914}, d)
	assert.Empty(t, tail)

	d, tail, err = ParseDatePartial([]byte("1914121"))
	require.NoError(t, err)
	assert.Equal(t, PartialDate{Precision: YearMonth, YearValue: 1914, MonthValue: 12}, d)
	assert.Equal(t, []byte("1"), tail)

	d, tail, err = ParseDatePartial([]byte("20180101xxxx"))
	require.NoError(t, err)
	assert.Equal(t, PartialDate{Precision: YearMonthDay, YearValue: 2018, MonthValue: 1, DayValue: 1}, d)
	assert.Equal(t, []byte("xxxx"), tail)
}

func TestParseDatePartial_LeapValidityNotChecked(t *testing.T) {
	d, tail, err := ParseDatePartial([]byte("20210229"))
	require.NoError(t, err)
	assert.Equal(t, PartialDate{Precision: YearMonthDay, YearValue: 2021, MonthValue: 2, DayValue: 29}, d)
	assert.Empty(t, tail)
}

func TestPartialDate_Range(t *testing.T) {
	lo, hi := PartialDate{Precision: Year, YearValue: 2020}.Range()
	assert.Equal(t, StrictDate{Year: 2020, Month: 1, Day: 1}, lo)
	assert.Equal(t, StrictDate{Year: 2020, Month: 12, Day: 31}, hi)

	lo, hi = PartialDate{Precision: YearMonth, YearValue: 2020, MonthValue: 2}.Range()
	assert.Equal(t, StrictDate{Year: 2020, Month: 2, Day: 1}, lo)
	assert.Equal(t, StrictDate{Year: 2020, Month: 2, Day: 29}, hi) // 2020 is a leap year
}
