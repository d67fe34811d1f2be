// Package duration parses ISO-8601 video durations and classifies them into length buckets.
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Label is a duration bucket.
type Label string

const (
	VeryShort  Label = "very short"
	Short      Label = "short"
	Medium     Label = "medium"
	Long       Label = "long"
	VeryLong   Label = "very long"
	NoDuration Label = "no duration"
)

// ErrInvalidDuration is returned for empty or malformed duration strings.
var ErrInvalidDuration = errors.New("invalid ISO-8601 duration")

// bounds are the lower edges (inclusive) of each bucket, ascending.
var bounds = []struct {
	from  float64
	label Label
}{
	{0, VeryShort},
	{30, Short},
	{120, Medium},
	{600, Long},
	{1800, VeryLong},
}

// Labels returns every bucket label, shortest first, NoDuration last.
func Labels() []Label {
	out := make([]Label, 0, len(bounds)+1)
	for _, b := range bounds {
		out = append(out, b.label)
	}
	return append(out, NoDuration)
}

// Classify maps a duration in seconds to its bucket. Buckets are closed on the left, so a
// value on a boundary belongs to the longer bucket. Nil, negative and non-finite values are
// NoDuration.
func Classify(seconds *float64) Label {
	if seconds == nil {
		return NoDuration
	}
	s := *seconds
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return NoDuration
	}
	label := NoDuration
	for _, b := range bounds {
		if s >= b.from {
			label = b.label
		}
	}
	return label
}

// Years and months have no fixed length and are rejected.
var isoPattern = regexp.MustCompile(`^P(?:(\d+)W)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

var unitSeconds = []float64{7 * 24 * 3600, 24 * 3600, 3600, 60, 1}

// Parse converts an ISO-8601 duration such as "PT1H2M3S" or "P0D" to seconds.
func Parse(iso string) (float64, error) {
	m := isoPattern.FindStringSubmatch(iso)
	if m == nil || iso == "P" || iso == "PT" || iso[len(iso)-1] == 'T' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
	}
	total := 0.0
	for i, part := range m[1:] {
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, iso)
		}
		total += v * unitSeconds[i]
	}
	return total, nil
}

// Format renders seconds as H:MM:SS, or MM:SS below one hour. Fractions of a second are
// dropped.
func Format(seconds float64) string {
	total := int64(math.Floor(seconds))
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
