package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/desertthunder/elx/internal/models"
)

// SessionRepository persists the session slot in SQLite.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Load reads the persisted (token, user) pair.
//
// Returns (nil, nil) when no session is stored. A row with an unparseable
// user record is reported as an error; callers treat it as an absent session.
func (r *SessionRepository) Load() (*models.Session, error) {
	query := `SELECT token, user_json FROM sessions WHERE id = 1`

	var (
		token    string
		userJSON string
	)

	err := r.db.QueryRow(query).Scan(&token, &userJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("malformed session record: %w", err)
	}

	if token == "" || user.ID == "" {
		return nil, fmt.Errorf("incomplete session record")
	}

	return &models.Session{Token: token, User: user}, nil
}

// Save replaces the persisted session with the given (token, user) pair.
//
// The delete and insert happen in one transaction so the slot always holds a
// complete pair or nothing.
func (r *SessionRepository) Save(session models.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}

	query := `INSERT INTO sessions (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)`
	if _, err := tx.Exec(query, session.Token, string(userJSON), time.Now()); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return tx.Commit()
}

// Clear removes the persisted session. Clearing an empty slot is a no-op.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec(`DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
