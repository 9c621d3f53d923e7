// Package complaint provides the domain types and persistent store for
// citizen grievances.
//
// The enumerations here are the closed vocabularies shared by the whole
// portal: every complaint carries exactly one Sector, one Priority and one
// Status. Values are stored as their display strings (the database and the
// API speak the same tokens), and each value knows its locale dictionary key
// so the view layer can localize it.
package complaint

import "time"

// Sector is the government-service category a grievance is routed to.
//
// Closed set. Welfare is the classifier's default when no keyword matches;
// Other is only ever assigned by officials, never by a classifier.
type Sector string

const (
	SectorRoads       Sector = "Roads"
	SectorElectricity Sector = "Electricity"
	SectorWater       Sector = "Water"
	SectorHealth      Sector = "Health"
	SectorEducation   Sector = "Education"
	SectorLawAndOrder Sector = "Law & Order"
	SectorWelfare     Sector = "Welfare"
	SectorOther       Sector = "Other"
)

// Sectors lists every sector in display order.
var Sectors = []Sector{
	SectorRoads,
	SectorElectricity,
	SectorWater,
	SectorHealth,
	SectorEducation,
	SectorLawAndOrder,
	SectorWelfare,
	SectorOther,
}

// sectorKeys maps each sector to its locale dictionary key.
// Law & Order uses the "police" key, matching the dictionary data.
var sectorKeys = map[Sector]string{
	SectorRoads:       "sector_roads",
	SectorElectricity: "sector_electricity",
	SectorWater:       "sector_water",
	SectorHealth:      "sector_health",
	SectorEducation:   "sector_education",
	SectorLawAndOrder: "sector_police",
	SectorWelfare:     "sector_welfare",
	SectorOther:       "sector_other",
}

// LocaleKey returns the dictionary key for the sector's localized label.
func (s Sector) LocaleKey() string {
	if key, ok := sectorKeys[s]; ok {
		return key
	}
	return "sector_other"
}

// Priority is the urgency tier assigned by the backend when a complaint is
// submitted. The client core only renders it, never computes it.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// LocaleKey returns the dictionary key for the priority's localized label.
func (p Priority) LocaleKey() string {
	switch p {
	case PriorityHigh:
		return "priority_high"
	case PriorityMedium:
		return "priority_medium"
	}
	return "priority_low"
}

// Status is one of the four ordered lifecycle stages of a complaint.
//
// The ordering is fixed and total: Submitted → Assigned → In Progress →
// Resolved. There is no representation for a complaint moving backward.
type Status string

const (
	StatusSubmitted  Status = "Submitted"
	StatusAssigned   Status = "Assigned"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// Statuses is the fixed lifecycle ordering. Index in this slice is the
// stage index used by the timeline builder.
var Statuses = []Status{
	StatusSubmitted,
	StatusAssigned,
	StatusInProgress,
	StatusResolved,
}

// LocaleKey returns the dictionary key for the status's localized label.
func (s Status) LocaleKey() string {
	switch s {
	case StatusAssigned:
		return "status_assigned"
	case StatusInProgress:
		return "status_in_progress"
	case StatusResolved:
		return "status_resolved"
	}
	return "status_submitted"
}

// Record is a single complaint as created by the backend on submission.
//
// The view layer never mutates a Record, it only projects it. Sector,
// Priority and ClusterID are computed server-side at submission time.
type Record struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Description string    `json:"description"`
	Sector      Sector    `json:"category"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	Pincode     string    `json:"pincode"`
	ClusterID   string    `json:"cluster_id,omitempty"`
	CreatedAt   time.Time `json:"-"`
}

// Date returns the submission date in the portal's display format.
func (r Record) Date() string {
	return r.CreatedAt.Format("2006-01-02")
}

// User is a portal account. Role is either "citizen" or "official".
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
}
