package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/MuhammadAhmed8/real-estate-ai-agent/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			stage TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS turns (
			session_id TEXT,
			seq INTEGER,
			role TEXT,
			content TEXT,
			tool_calls TEXT,
			tool_call_id TEXT,
			created_at DATETIME,
			PRIMARY KEY (session_id, seq),
			FOREIGN KEY(session_id) REFERENCES sessions(id)
		);`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateSession(session *Session) error {
	query := `INSERT INTO sessions (id, stage, created_at, updated_at) VALUES (?, ?, ?, ?)`
	_, err := s.db.Exec(query, session.ID, string(session.Stage), session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetSession(id string) (*Session, error) {
	query := `SELECT id, stage, created_at, updated_at FROM sessions WHERE id = ?`
	row := s.db.QueryRow(query, id)

	var session Session
	var stage string
	if err := row.Scan(&session.ID, &stage, &session.CreatedAt, &session.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	session.Stage = domain.Stage(stage)

	return &session, nil
}

func (s *SQLiteStore) UpdateSession(session *Session) error {
	query := `UPDATE sessions SET stage = ?, updated_at = ? WHERE id = ?`
	_, err := s.db.Exec(query, string(session.Stage), time.Now(), session.ID)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) AppendTurns(sessionID string, turns []Turn) error {
	if len(turns) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin append: %w", err)
	}
	defer tx.Rollback()

	var next int
	row := tx.QueryRow(`SELECT COALESCE(MAX(seq), -1) + 1 FROM turns WHERE session_id = ?`, sessionID)
	if err := row.Scan(&next); err != nil {
		return fmt.Errorf("failed to read turn sequence: %w", err)
	}

	query := `INSERT INTO turns (session_id, seq, role, content, tool_calls, tool_call_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, t := range turns {
		var callsJSON string
		if len(t.ToolCalls) > 0 {
			raw, err := json.Marshal(t.ToolCalls)
			if err != nil {
				return fmt.Errorf("failed to marshal tool calls: %w", err)
			}
			callsJSON = string(raw)
		}

		createdAt := t.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}

		if _, err := tx.Exec(query, sessionID, next+i, t.Role, t.Content, callsJSON, t.ToolCallID, createdAt); err != nil {
			return fmt.Errorf("failed to append turn: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListTurns(sessionID string) ([]Turn, error) {
	query := `SELECT session_id, seq, role, content, tool_calls, tool_call_id, created_at
		FROM turns WHERE session_id = ? ORDER BY seq`
	rows, err := s.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var callsJSON string
		if err := rows.Scan(&t.SessionID, &t.Seq, &t.Role, &t.Content, &callsJSON, &t.ToolCallID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		if callsJSON != "" {
			if err := json.Unmarshal([]byte(callsJSON), &t.ToolCalls); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tool calls: %w", err)
			}
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return turns, nil
}
