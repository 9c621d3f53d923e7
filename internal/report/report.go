// Package report builds the scheduled admin report.
//
// Two artifacts: a plain-text digest with sector/status/priority breakdowns
// (for logs and the Telegram caption) and a PNG table of the most recent
// complaints rendered with gg (for the Telegram photo).
package report

import (
	"fmt"
	"sort"
	"strings"

	"nivaran/internal/complaint"
)

// Text formats the admin digest for the given snapshot.
//
// Layout mirrors the portal's internal database report: headline counters,
// a recent-complaint table and grouped breakdowns.
func Text(stats complaint.Stats, bySector, byStatus, byPriority map[string]int) string {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("                  GRIEVANCE REPORT\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "[COMPLAINTS] Total: %d  High: %d  Pending: %d  Processing: %d  Resolved: %d\n\n",
		stats.Total, stats.High, stats.Pending, stats.Processing, stats.Resolved)

	fmt.Fprintf(&b, "%-5s %-15s %-10s %-12s %-8s\n", "ID", "Sector", "Priority", "Status", "Pincode")
	b.WriteString(strings.Repeat("-", 55) + "\n")
	for _, c := range stats.Recent {
		fmt.Fprintf(&b, "%-5d %-15s %-10s %-12s %-8s\n", c.ID, c.Sector, c.Priority, c.Status, c.Pincode)
	}

	writeBreakdown(&b, "By Sector", bySector)
	writeBreakdown(&b, "By Status", byStatus)
	writeBreakdown(&b, "By Priority", byPriority)

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	return b.String()
}

// writeBreakdown appends one grouped count section, keys sorted for stable
// output.
func writeBreakdown(b *strings.Builder, title string, counts map[string]int) {
	fmt.Fprintf(b, "\n%s:\n", title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "  - %s: %d\n", k, counts[k])
	}
}
