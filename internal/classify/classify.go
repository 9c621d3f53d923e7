// Package classify detects a complaint's service sector and priority from
// its free-text description.
//
// Two keyword rule sets live here. Classify is the instant client-side
// preview shown while the citizen is still typing (or speaking); DetectSector
// is the authoritative backend rule set applied at submission. The two may
// disagree on the same text — that is normal, the preview is advisory only
// and the backend's answer wins.
//
// All functions are total, pure and non-blocking: any text, including the
// empty string, classifies to exactly one sector.
package classify

import (
	"fmt"
	"strings"

	"nivaran/internal/complaint"
)

// Rule pairs a sector with the keywords that select it.
//
// Rules are held in an explicit ordered list, not a map: declaration order
// defines tie-break precedence, and the first rule with any keyword found as
// a substring of the normalized text wins.
type Rule struct {
	Sector   complaint.Sector
	Keywords []string
}

// previewRules is the client-side preview rule set.
var previewRules = []Rule{
	{complaint.SectorRoads, []string{"road", "pothole", "street"}},
	{complaint.SectorElectricity, []string{"power", "light", "shock"}},
	{complaint.SectorWater, []string{"water", "pipe", "leak"}},
	{complaint.SectorHealth, []string{"hospital", "sick", "doctor"}},
	{complaint.SectorLawAndOrder, []string{"theft", "crime", "police"}},
}

// sectorRules is the backend's authoritative rule set. Wider keyword sets
// than the preview, and it knows Education; precedence works the same way.
var sectorRules = []Rule{
	{complaint.SectorRoads, []string{"road", "pothole", "traffic", "street"}},
	{complaint.SectorElectricity, []string{"electricity", "power", "light", "current"}},
	{complaint.SectorWater, []string{"water", "pipe", "leak", "drainage"}},
	{complaint.SectorHealth, []string{"health", "hospital", "doctor", "medicine"}},
	{complaint.SectorEducation, []string{"school", "teacher", "education", "book"}},
	{complaint.SectorLawAndOrder, []string{"police", "crime", "theft", "safety"}},
}

// emergencyKeywords force High priority regardless of sector.
var emergencyKeywords = []string{
	"danger", "accident", "fire", "emergency", "attack",
	"severe", "urgent", "died", "blood",
}

// negativeWords approximate the original's sentiment check: wording this
// charged usually signals urgency even without an emergency keyword.
var negativeWords = []string{
	"terrible", "horrible", "worst", "awful", "disgust",
	"unbearable", "pathetic", "useless", "dying",
}

// matchRules returns the first rule whose keywords hit the normalized text,
// or Welfare when nothing matches.
func matchRules(rules []Rule, text string) complaint.Sector {
	text = strings.ToLower(text)
	for _, rule := range rules {
		for _, word := range rule.Keywords {
			if strings.Contains(text, word) {
				return rule.Sector
			}
		}
	}
	return complaint.SectorWelfare
}

// Classify returns the preview sector for the given description text.
//
// This is the sector highlighted in the UI before the server confirms; it
// never produces Other or Education. Empty or unmatched text → Welfare.
func Classify(text string) complaint.Sector {
	return matchRules(previewRules, text)
}

// DetectSector returns the authoritative sector assigned at submission.
func DetectSector(text string) complaint.Sector {
	return matchRules(sectorRules, text)
}

// DetectPriority assigns the urgency tier for a new complaint.
//
// High: emergency keyword present, Law & Order sector, or strongly negative
// wording (two or more distinct negative terms). Medium: Electricity, Water
// or Health. Low: everything else.
func DetectPriority(text string, sector complaint.Sector) complaint.Priority {
	text = strings.ToLower(text)

	for _, word := range emergencyKeywords {
		if strings.Contains(text, word) {
			return complaint.PriorityHigh
		}
	}
	if sector == complaint.SectorLawAndOrder {
		return complaint.PriorityHigh
	}

	negatives := 0
	for _, word := range negativeWords {
		if strings.Contains(text, word) {
			negatives++
		}
	}
	if negatives >= 2 {
		return complaint.PriorityHigh
	}

	switch sector {
	case complaint.SectorElectricity, complaint.SectorWater, complaint.SectorHealth:
		return complaint.PriorityMedium
	}
	return complaint.PriorityLow
}

// ClusterID groups "same" complaints: one cluster per pincode and sector.
func ClusterID(pincode string, sector complaint.Sector) string {
	return fmt.Sprintf("%s-%s", pincode, sector)
}
