package dtvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime([]byte("20171130101010.564204-1001"), 0)
	require.NoError(t, err)
	assert.Equal(t, StrictDate{Year: 2017, Month: 11, Day: 30}, dt.Date)
	assert.Equal(t, 564204, dt.Time.Micros)
	assert.Equal(t, -(10*3600 + 60), dt.OffsetSeconds)
}

func TestParseDateTime_UsesDefaultOffsetWhenAbsent(t *testing.T) {
	dt, err := ParseDateTime([]byte("20171130101010.564204"), 5*3600)
	require.NoError(t, err)
	assert.Equal(t, 5*3600, dt.OffsetSeconds)
}

func TestParseDateTime_TruncatedFraction(t *testing.T) {
	_, err := ParseDateTime([]byte("20151231162945."), 0)
	assert.Error(t, err)
}

func TestParseDateTime_TruncatedOffset(t *testing.T) {
	_, err := ParseDateTime([]byte("20171130101010.204+011"), 0)
	assert.ErrorIs(t, err, ErrUnexpectedEndOfInput)
}

func TestParseDateTimePartial(t *testing.T) {
	dt, err := ParseDateTimePartial([]byte("2017-0135"), 0)
	require.NoError(t, err)
	assert.Equal(t, PartialDate{Precision: Year, YearValue: 2017}, dt.Date)
	assert.Nil(t, dt.Time)
	assert.Equal(t, -(1*3600 + 35*60), dt.OffsetSeconds)
}

func TestParseDateTimePartial_FullPrecision(t *testing.T) {
	dt, err := ParseDateTimePartial([]byte("20180615073012.5+0200"), 0)
	require.NoError(t, err)
	require.NotNil(t, dt.Time)
	assert.Equal(t, HourMinuteSecondFraction, dt.Time.Precision)
	assert.Equal(t, 2*3600, dt.OffsetSeconds)
}
