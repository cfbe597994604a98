package schedule

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sonnes/sabha/core"
)

// ErrBadRange rejects a range whose start is not strictly before its end.
var ErrBadRange = errors.New("start time must be before end time")

// ErrDuplicateRange rejects a range identical to one already declared.
var ErrDuplicateRange = errors.New("time range already exists")

// Availability is the persisted availability record: the declared time
// ranges and whether to remember them across runs. Ranges may overlap each
// other; they are never coalesced.
type Availability struct {
	Ranges   []core.TimeRange `json:"ranges"`
	Remember bool             `json:"remember"`
}

// Add declares a new availability window. Start and end are 24-hour "HH:MM"
// strings; start must sort strictly before end (lexicographic comparison is
// numeric for the fixed-width format) and the exact pair must not already be
// declared. On rejection the record is left unchanged.
func (a *Availability) Add(startTime, endTime string) (core.TimeRange, error) {
	if startTime >= endTime {
		return core.TimeRange{}, ErrBadRange
	}
	for _, r := range a.Ranges {
		if r.StartTime == startTime && r.EndTime == endTime {
			return core.TimeRange{}, ErrDuplicateRange
		}
	}

	r := core.TimeRange{
		ID:        "range-" + uuid.NewString(),
		StartTime: startTime,
		EndTime:   endTime,
	}
	a.Ranges = append(a.Ranges, r)
	return r, nil
}

// Remove drops the range with the given id. Unknown ids are a no-op.
func (a *Availability) Remove(id string) {
	out := a.Ranges[:0]
	for _, r := range a.Ranges {
		if r.ID != id {
			out = append(out, r)
		}
	}
	a.Ranges = out
}

// Clear drops every declared range.
func (a *Availability) Clear() {
	a.Ranges = nil
}

// Availability loads the availability record. A missing file yields an empty
// record with Remember enabled, matching the first-run default.
func (s *Store) Availability() (Availability, error) {
	a := Availability{Remember: true}
	if err := s.readJSON(availabilityFile, &a); err != nil {
		return Availability{Remember: true}, err
	}
	return a, nil
}

// SaveAvailability persists the record. When Remember is off the stored
// record is deleted instead of written.
func (s *Store) SaveAvailability(a Availability) error {
	if !a.Remember {
		err := os.Remove(filepath.Join(s.Dir, availabilityFile))
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return s.writeJSON(availabilityFile, a)
}
