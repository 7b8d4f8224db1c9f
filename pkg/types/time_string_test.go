package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "morning", input: "09:05"},
		{name: "midnight", input: "00:00"},
		{name: "last minute", input: "23:59"},
		{name: "single digit hour", input: "9:05", wantErr: true},
		{name: "24 hours", input: "24:00", wantErr: true},
		{name: "bad minutes", input: "10:60", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	end, err := TimeString("10:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), end)

	end, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), end)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrOutOfDay)

	_, err = TimeString("bad").AddMinutes(5)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("08:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("10:30").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 29, 10, 30, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan("07:00"))
	assert.Equal(t, TimeString("07:00"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
