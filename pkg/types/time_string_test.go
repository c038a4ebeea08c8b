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
		{name: "canonical", input: "08:00", want: "08:00"},
		{name: "single digit hour", input: "9:15", want: "09:15"},
		{name: "postgres time", input: "14:30:00", want: "14:30"},
		{name: "surrounding spaces", input: " 11:45 ", want: "11:45"},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
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
	got, err := TimeString("11:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:15"), got)

	_, err = TimeString("23:50").AddMinutes(15)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:15"))
	assert.False(t, TimeString("08:15").IsBefore("08:15"))
	assert.True(t, TimeString("19:00").IsAfter("14:00"))
	assert.False(t, TimeString("bad").IsBefore("08:00"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("08:30").On(date, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("10:30")))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 17, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("17:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("08:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
