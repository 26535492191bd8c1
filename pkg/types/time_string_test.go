package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "обычное время", input: "10:30", want: "10:30"},
		{name: "полночь", input: "00:00", want: "00:00"},
		{name: "конец дня", input: "24:00", want: "24:00"},
		{name: "пробелы обрезаются", input: " 08:00 ", want: "08:00"},
		{name: "после конца дня", input: "24:01", wantErr: true},
		{name: "некорректные минуты", input: "10:60", wantErr: true},
		{name: "без ведущего нуля", input: "9:00", wantErr: true},
		{name: "с секундами", input: "10:00:00", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("22:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	got, err = TimeString("10:15").AddMinutes(-15)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), got)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:01").IsAfter("10:00"))
	assert.True(t, TimeString("10:00").Equal("10:00"))
	assert.Equal(t, 600, TimeString("10:00").Minutes())
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(int64(630)))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("480")))
	assert.Equal(t, TimeString("08:00"), ts)

	require.NoError(t, ts.Scan("18:45:00"))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("07:05"), ts)

	assert.Error(t, ts.Scan(int64(MinutesInDay+1)))
	assert.Error(t, ts.Scan(3.14))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("24:00").Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1440), v)

	_, err = TimeString("25:00").Value()
	assert.Error(t, err)
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd TimeString
		want                       bool
	}{
		{name: "частичное пересечение", aStart: "11:30", aEnd: "12:00", bStart: "11:20", bEnd: "11:40", want: true},
		{name: "граничат слева", aStart: "11:30", aEnd: "12:00", bStart: "11:00", bEnd: "11:30", want: false},
		{name: "граничат справа", aStart: "11:30", aEnd: "12:00", bStart: "12:00", bEnd: "12:30", want: false},
		{name: "вложенный интервал", aStart: "10:00", aEnd: "12:00", bStart: "10:30", bEnd: "10:45", want: true},
		{name: "покрывающий интервал", aStart: "10:00", aEnd: "11:00", bStart: "09:00", bEnd: "13:00", want: true},
		{name: "совпадают", aStart: "10:00", aEnd: "11:00", bStart: "10:00", bEnd: "11:00", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, RangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
