package complaint

import (
	"database/sql"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	apperrors "nivaran/internal/errors"
)

// Store persists users and complaints in sqlite.
//
// database/sql handles connection safety; the store adds no locking of its
// own. All failures are wrapped as BackendError except missing rows, which
// surface as NotFoundError so the API can answer 404 instead of 500.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the sqlite database and bootstraps the schema.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, apperrors.NewBackendError("failed to open database", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role     TEXT NOT NULL DEFAULT 'citizen'
	);

	CREATE TABLE IF NOT EXISTS complaints (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL,
		description TEXT NOT NULL,
		category    TEXT NOT NULL,
		priority    TEXT NOT NULL,
		pincode     TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'Submitted',
		cluster_id  TEXT DEFAULT '',
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_complaints_user ON complaints(user_id);
	CREATE INDEX IF NOT EXISTS idx_complaints_cluster ON complaints(cluster_id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperrors.NewBackendError("failed to create schema", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new account and returns it with its assigned id.
func (s *Store) CreateUser(name, email, password, role string) (User, error) {
	res, err := s.db.Exec(
		`INSERT INTO users (name, email, password, role) VALUES (?, ?, ?, ?)`,
		name, email, password, role,
	)
	if err != nil {
		return User{}, apperrors.NewBackendError("failed to create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return User{}, apperrors.NewBackendError("failed to read new user id", err)
	}
	return User{ID: id, Name: name, Email: email, Password: password, Role: role}, nil
}

// UserByEmail fetches an account by email. Missing account → NotFoundError.
func (s *Store) UserByEmail(email string) (User, error) {
	var u User
	err := s.db.QueryRow(
		`SELECT id, name, email, password, role FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role)
	if err == sql.ErrNoRows {
		return User{}, apperrors.NewNotFoundError("user", email)
	}
	if err != nil {
		return User{}, apperrors.NewBackendError("failed to look up user", err)
	}
	return u, nil
}

// Insert stores a new complaint and returns its assigned id.
func (s *Store) Insert(rec Record) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO complaints (user_id, description, category, priority, pincode, status, cluster_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.Description, string(rec.Sector), string(rec.Priority),
		rec.Pincode, string(rec.Status), rec.ClusterID, rec.CreatedAt,
	)
	if err != nil {
		return 0, apperrors.NewBackendError("failed to insert complaint", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperrors.NewBackendError("failed to read new complaint id", err)
	}
	return id, nil
}

// scanRecords drains a complaint result set.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var category, priority, status string
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Description, &category,
			&priority, &rec.Pincode, &status, &rec.ClusterID, &created); err != nil {
			return nil, apperrors.NewBackendError("failed to scan complaint row", err)
		}
		rec.Sector = Sector(category)
		rec.Priority = Priority(priority)
		rec.Status = Status(status)
		rec.CreatedAt = created
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewBackendError("failed to read complaints", err)
	}
	return records, nil
}

const recordColumns = `id, user_id, description, category, priority, pincode, status, cluster_id, created_at`

// ByUser returns a user's complaints, newest first.
func (s *Store) ByUser(userID int64) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM complaints WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, apperrors.NewBackendError("failed to query complaints", err)
	}
	return scanRecords(rows)
}

// ByID fetches one complaint. Missing id → NotFoundError, never conflated
// with a backend failure.
func (s *Store) ByID(id int64) (Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM complaints WHERE id = ?`, id,
	)
	if err != nil {
		return Record{}, apperrors.NewBackendError("failed to query complaint", err)
	}
	records, err := scanRecords(rows)
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, apperrors.NewNotFoundError("complaint", strconv.FormatInt(id, 10))
	}
	return records[0], nil
}

// SetStatus advances a complaint to the given lifecycle stage.
func (s *Store) SetStatus(id int64, status Status) error {
	res, err := s.db.Exec(`UPDATE complaints SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return apperrors.NewBackendError("failed to update status", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperrors.NewBackendError("failed to confirm status update", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError("complaint", strconv.FormatInt(id, 10))
	}
	return nil
}

// Recent returns the latest complaints across all users, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT `+recordColumns+` FROM complaints ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, apperrors.NewBackendError("failed to query recent complaints", err)
	}
	return scanRecords(rows)
}
