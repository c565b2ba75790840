package dtvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime_FractionRightPadded(t *testing.T) {
	tv, tail, err := ParseTime([]byte("235959.1234567"))
	require.NoError(t, err)
	assert.Equal(t, StrictTime{Hour: 23, Minute: 59, Second: 59, Micros: 123456}, tv)
	assert.Equal(t, []byte("7"), tail)

	tv, tail, err = ParseTime([]byte("100000.1"))
	require.NoError(t, err)
	assert.Equal(t, StrictTime{Hour: 10, Minute: 0, Second: 0, Micros: 100000}, tv)
	assert.Empty(t, tail)

	tv, _, err = ParseTime([]byte("235959.0123"))
	require.NoError(t, err)
	assert.Equal(t, 12300, tv.Micros)
}

func TestParseTime_InvalidHour(t *testing.T) {
	_, _, err := ParseTime([]byte("24xxxx"))
	var invalid *InvalidComponentError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, ComponentHour, invalid.Component)
	assert.Equal(t, 24, invalid.Value)
}

func TestParseTime_MissingFractionDelimiter(t *testing.T) {
	_, _, err := ParseTime([]byte("16144500"))
	var delim *FractionDelimiterError
	assert.ErrorAs(t, err, &delim)
}

func TestParseTimePartial(t *testing.T) {
	tv, tail, err := ParseTimePartial([]byte("075501.5"))
	require.NoError(t, err)
	assert.Equal(t, PartialTime{
		Precision: HourMinuteSecondFraction, HourValue: 7, MinuteValue: 55, SecondValue: 1, Frac: 5, FracDigits: 1,
	}, tv)
	assert.Empty(t, tail)

	tv, tail, err = ParseTimePartial([]byte("075501.999999"))
	require.NoError(t, err)
	assert.Equal(t, 999999, tv.Frac)
	assert.Equal(t, 6, tv.FracDigits)
	assert.Empty(t, tail)

	tv, tail, err = ParseTimePartial([]byte("075501.9999994"))
	require.NoError(t, err)
	assert.Equal(t, 999999, tv.Frac)
	assert.Equal(t, 6, tv.FracDigits)
	assert.Equal(t, []byte("4"), tail)
}

func TestParseTimePartial_StopsAtReadFailure(t *testing.T) {
	tv, tail, err := ParseTimePartial([]byte("07xx"))
	require.NoError(t, err)
	assert.Equal(t, PartialTime{Precision: Hour, HourValue: 7}, tv)
	assert.Equal(t, []byte("xx"), tail)
}
