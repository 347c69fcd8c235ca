package grading

import (
	"fmt"
	"sort"

	"github.com/kalulu/darasa/core"
)

// Grade is one classified result on the grading scale.
type Grade struct {
	Label string  `json:"label"`
	Point float64 `json:"point"`
}

// OutOfRangeError reports a percentage outside [0, 100].
// Percentages are validated at the boundary, so seeing one here is a caller bug;
// it is rejected rather than clamped.
type OutOfRangeError struct {
	Percent float64
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("percentage %v is outside the [0, 100] range", err.Percent)
}

// Scale classifies percentages onto an ordered table of grade bands.
// It is immutable once built; a single Scale may be shared across goroutines.
type Scale struct {
	bands []core.GradeBand // sorted by MinPercent descending
}

// NewScale validates the configured band table and builds a Scale from it.
// The table must cover [0, 100] without gaps (lowest band starts at 0), hold no
// duplicate floors, and award points that never decrease as percentages grow.
// A malformed table is a configuration error, fatal at startup.
func NewScale(bands []core.GradeBand) (*Scale, error) {
	if len(bands) == 0 {
		return nil, core.NewConfigurationError("grade scale: no bands configured")
	}

	sorted := make([]core.GradeBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinPercent < sorted[j].MinPercent })

	if sorted[0].MinPercent != 0 {
		return nil, core.NewConfigurationError(
			fmt.Sprintf("grade scale: lowest band starts at %v, must start at 0", sorted[0].MinPercent))
	}
	for i, band := range sorted {
		if band.MinPercent < 0 || band.MinPercent >= 100 {
			return nil, core.NewConfigurationError(
				fmt.Sprintf("grade scale: band %q floor %v is outside [0, 100)", band.Label, band.MinPercent))
		}
		if band.Label == "" {
			return nil, core.NewConfigurationError(
				fmt.Sprintf("grade scale: band with floor %v has no label", band.MinPercent))
		}
		if i == 0 {
			continue
		}
		if band.MinPercent == sorted[i-1].MinPercent {
			return nil, core.NewConfigurationError(
				fmt.Sprintf("grade scale: bands %q and %q share floor %v", sorted[i-1].Label, band.Label, band.MinPercent))
		}
		if band.Point < sorted[i-1].Point {
			return nil, core.NewConfigurationError(
				fmt.Sprintf("grade scale: band %q awards %v points, less than lower band %q (%v)",
					band.Label, band.Point, sorted[i-1].Label, sorted[i-1].Point))
		}
	}

	// classification walks top-down
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return &Scale{bands: sorted}, nil
}

// NewScaleFromConfig builds the Scale from the app configuration.
func NewScaleFromConfig() (*Scale, error) {
	bands, err := core.GradeBands()
	if err != nil {
		return nil, err
	}
	return NewScale(bands)
}

// Classify maps a percentage in [0, 100] to its grade band.
func (s *Scale) Classify(percent float64) (Grade, error) {
	if percent < 0 || percent > 100 {
		return Grade{}, &OutOfRangeError{Percent: percent}
	}
	for _, band := range s.bands {
		if percent >= band.MinPercent {
			return Grade{Label: band.Label, Point: band.Point}, nil
		}
	}
	// unreachable: the lowest band floor is 0
	return Grade{}, &OutOfRangeError{Percent: percent}
}

// Bands returns a copy of the scale's bands, highest first.
func (s *Scale) Bands() []core.GradeBand {
	bands := make([]core.GradeBand, len(s.bands))
	copy(bands, s.bands)
	return bands
}
