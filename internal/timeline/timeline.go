// Package timeline renders a complaint's lifecycle as an ordered,
// partially-activated stage sequence.
//
// The lifecycle is monotonic and non-branching: Submitted → Assigned →
// In Progress → Resolved. Once a stage is reached every prior stage is also
// reached, and there is no way to express a complaint moving backward.
package timeline

import (
	"nivaran/internal/complaint"
	"nivaran/internal/locale"
)

// Stage is one lifecycle checkpoint with its localized label and a flag
// telling the UI whether the complaint has reached it. Recomputed on every
// render, never persisted.
type Stage struct {
	Status  complaint.Status `json:"status"`
	Label   string           `json:"label"`
	Reached bool             `json:"reached"`
}

// Index returns the position of status in the fixed four-stage ordering.
//
// Unknown or unrecognized status values degrade to 0 (Submitted) instead of
// failing, matching how the portal treats foreign status strings.
func Index(status complaint.Status) int {
	for i, s := range complaint.Statuses {
		if s == status {
			return i
		}
	}
	return 0
}

// Build produces all four stages in lifecycle order for the given status.
//
// A stage is reached when its index is at or before the current status's
// index. Labels come from the locale dictionary, with the literal English
// stage name as the ultimate fallback. Total for any status-like string.
func Build(dict *locale.Dictionary, status complaint.Status, tag string) []Stage {
	current := Index(status)
	stages := make([]Stage, 0, len(complaint.Statuses))
	for i, s := range complaint.Statuses {
		stages = append(stages, Stage{
			Status:  s,
			Label:   dict.Resolve(tag, s.LocaleKey(), string(s)),
			Reached: i <= current,
		})
	}
	return stages
}
