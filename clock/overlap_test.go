package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sonnes/sabha/core"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		end    int
		ranges []core.TimeRange
		want   bool
	}{
		{
			name:  "no ranges means no constraint",
			start: 600, end: 660,
			ranges: nil,
			want:   true,
		},
		{
			name:  "touching endpoints do not overlap",
			start: 600, end: 660,
			ranges: []core.TimeRange{{StartTime: "09:00", EndTime: "10:00"}},
			want:   false,
		},
		{
			name:  "one minute of overlap counts",
			start: 600, end: 660,
			ranges: []core.TimeRange{{StartTime: "09:00", EndTime: "10:01"}},
			want:   true,
		},
		{
			name:  "session inside range",
			start: 600, end: 660,
			ranges: []core.TimeRange{{StartTime: "09:00", EndTime: "17:00"}},
			want:   true,
		},
		{
			name:  "range inside session",
			start: 540, end: 720,
			ranges: []core.TimeRange{{StartTime: "10:00", EndTime: "10:30"}},
			want:   true,
		},
		{
			name:  "any of several ranges is enough",
			start: 600, end: 660,
			ranges: []core.TimeRange{
				{StartTime: "07:00", EndTime: "08:00"},
				{StartTime: "10:30", EndTime: "11:30"},
			},
			want: true,
		},
		{
			name:  "malformed range contributes no overlap",
			start: 600, end: 660,
			ranges: []core.TimeRange{{StartTime: "whenever", EndTime: "11:00"}},
			want:   false,
		},
		{
			name:  "malformed range does not mask a valid one",
			start: 600, end: 660,
			ranges: []core.TimeRange{
				{StartTime: "whenever", EndTime: "11:00"},
				{StartTime: "10:00", EndTime: "11:00"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.end, tt.ranges))
		})
	}
}
