package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int
		wantOK bool
	}{
		{name: "midnight", in: "12:00 AM", want: 0, wantOK: true},
		{name: "noon", in: "12:00 PM", want: 720, wantOK: true},
		{name: "afternoon", in: "1:00 PM", want: 780, wantOK: true},
		{name: "morning with minutes", in: "9:30 AM", want: 570, wantOK: true},
		{name: "no period defaults to as-is", in: "14:45", want: 885, wantOK: true},
		{name: "lowercase period", in: "9:30 pm", want: 1290, wantOK: true},
		{name: "embedded in longer text", in: "Doors at 9:30 AM sharp", want: 570, wantOK: true},
		{name: "no time pattern", in: "TBD", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToMinutes(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Window
		wantOK bool
	}{
		{
			name:   "range",
			in:     "11:30 AM - 1:00 PM",
			want:   Window{Start: 690, End: 780},
			wantOK: true,
		},
		{
			name:   "single time synthesizes one hour",
			in:     "9:30 AM",
			want:   Window{Start: 570, End: 630},
			wantOK: true,
		},
		{
			name:   "range across noon",
			in:     "11:00 AM - 12:30 PM",
			want:   Window{Start: 660, End: 750},
			wantOK: true,
		},
		{name: "unparseable start fails whole range", in: "TBD - 1:00 PM", wantOK: false},
		{name: "unparseable end fails whole range", in: "11:30 AM - TBD", wantOK: false},
		{name: "garbage", in: "To be announced", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWindow(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	assert.Equal(t, "09:30", MinutesToTime(570))
	assert.Equal(t, "00:00", MinutesToTime(0))
	assert.Equal(t, "23:59", MinutesToTime(1439))
}

func TestConvert12To24(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9:00 AM", "09:00"},
		{"2:30 PM", "14:30"},
		{"12:00 AM", "00:00"},
		{"12:00 PM", "12:00"},
		{"11:59 pm", "23:59"},
		{"not a time", "not a time"}, // pass-through on parse failure
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Convert12To24(tt.in), "input %q", tt.in)
	}
}

func TestConvert24To12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "9:00 AM"},
		{"14:30", "2:30 PM"},
		{"00:15", "12:15 AM"},
		{"12:00", "12:00 PM"},
		{"midnightish", "midnightish"}, // pass-through on parse failure
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Convert24To12(tt.in), "input %q", tt.in)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, in := range []string{"9:00 AM", "12:00 AM", "12:00 PM", "2:30 PM", "11:45 PM"} {
		assert.Equal(t, in, Convert24To12(Convert12To24(in)))
	}
}

func TestPresetRange(t *testing.T) {
	tests := []struct {
		preset    string
		wantStart string
		wantEnd   string
	}{
		{"Morning", "09:00", "12:00"},
		{"Afternoon", "12:00", "17:00"},
		{"Evening", "17:00", "21:00"},
		{"Anything else", "09:00", "17:00"},
	}
	for _, tt := range tests {
		start, end := PresetRange(tt.preset)
		assert.Equal(t, tt.wantStart, start)
		assert.Equal(t, tt.wantEnd, end)
	}
}

func TestTimeOptions(t *testing.T) {
	options := TimeOptions()

	require.NotEmpty(t, options)
	assert.Equal(t, "8:00 AM", options[0])
	assert.Equal(t, "10:00 PM", options[len(options)-1])
	// 8:00 through 22:00 in 30-minute steps.
	assert.Len(t, options, 29)
}
