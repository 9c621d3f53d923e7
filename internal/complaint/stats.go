package complaint

import (
	apperrors "nivaran/internal/errors"
)

// RecentSummary is the trimmed complaint shape shown on the admin dashboard.
type RecentSummary struct {
	ID       int64    `json:"id"`
	Sector   Sector   `json:"category"`
	Pincode  string   `json:"pincode"`
	Priority Priority `json:"priority"`
	Status   Status   `json:"status"`
}

// Cluster groups "same" complaints by pincode and sector, with per-status
// progress counts for the admin view.
type Cluster struct {
	Topic      string `json:"topic"`
	Total      int    `json:"total"`
	Resolved   int    `json:"resolved"`
	Processing int    `json:"processing"`
}

// Stats is the admin dashboard payload.
type Stats struct {
	Total      int             `json:"total"`
	High       int             `json:"high"`
	Pending    int             `json:"pending"`
	Resolved   int             `json:"resolved"`
	Processing int             `json:"processing"`
	Recent     []RecentSummary `json:"recent_complaints"`
	Clusters   []Cluster       `json:"clusters"`
}

// Stats computes the admin dashboard counters, the ten most recent
// complaints and the five largest clusters.
func (s *Store) Stats() (Stats, error) {
	var st Stats

	counters := []struct {
		dest  *int
		query string
		arg   string
	}{
		{&st.Total, `SELECT COUNT(*) FROM complaints`, ""},
		{&st.High, `SELECT COUNT(*) FROM complaints WHERE priority = ?`, string(PriorityHigh)},
		{&st.Pending, `SELECT COUNT(*) FROM complaints WHERE status = ?`, string(StatusSubmitted)},
		{&st.Resolved, `SELECT COUNT(*) FROM complaints WHERE status = ?`, string(StatusResolved)},
		{&st.Processing, `SELECT COUNT(*) FROM complaints WHERE status = ?`, string(StatusInProgress)},
	}
	for _, c := range counters {
		var err error
		if c.arg == "" {
			err = s.db.QueryRow(c.query).Scan(c.dest)
		} else {
			err = s.db.QueryRow(c.query, c.arg).Scan(c.dest)
		}
		if err != nil {
			return Stats{}, apperrors.NewBackendError("failed to count complaints", err)
		}
	}

	recent, err := s.Recent(10)
	if err != nil {
		return Stats{}, err
	}
	st.Recent = make([]RecentSummary, 0, len(recent))
	for _, rec := range recent {
		st.Recent = append(st.Recent, RecentSummary{
			ID:       rec.ID,
			Sector:   rec.Sector,
			Pincode:  rec.Pincode,
			Priority: rec.Priority,
			Status:   rec.Status,
		})
	}

	rows, err := s.db.Query(`
		SELECT category, pincode, COUNT(id) AS total,
		       SUM(CASE WHEN status = 'Resolved' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN status = 'In Progress' THEN 1 ELSE 0 END)
		FROM complaints
		GROUP BY cluster_id
		ORDER BY total DESC
		LIMIT 5`)
	if err != nil {
		return Stats{}, apperrors.NewBackendError("failed to query clusters", err)
	}
	defer rows.Close()
	for rows.Next() {
		var category, pincode string
		var cl Cluster
		if err := rows.Scan(&category, &pincode, &cl.Total, &cl.Resolved, &cl.Processing); err != nil {
			return Stats{}, apperrors.NewBackendError("failed to scan cluster row", err)
		}
		cl.Topic = category + " Issue in " + pincode
		st.Clusters = append(st.Clusters, cl)
	}
	if err := rows.Err(); err != nil {
		return Stats{}, apperrors.NewBackendError("failed to read clusters", err)
	}

	return st, nil
}

// CountBy returns complaint counts grouped by the given column. Used by the
// daily report for sector, status and priority breakdowns.
func (s *Store) CountBy(column string) (map[string]int, error) {
	switch column {
	case "category", "status", "priority":
	default:
		return nil, apperrors.NewBackendError("unsupported breakdown column "+column, nil)
	}

	rows, err := s.db.Query(`SELECT ` + column + `, COUNT(id) FROM complaints GROUP BY ` + column)
	if err != nil {
		return nil, apperrors.NewBackendError("failed to query breakdown", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var value string
		var n int
		if err := rows.Scan(&value, &n); err != nil {
			return nil, apperrors.NewBackendError("failed to scan breakdown row", err)
		}
		counts[value] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewBackendError("failed to read breakdown", err)
	}
	return counts, nil
}
