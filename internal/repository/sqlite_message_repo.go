package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"remiro-ai/internal/domain"
)

// SQLiteMessageRepository es la variante embebida por defecto: cero
// infraestructura, el transcript vive junto a los perfiles en DataDir.
type SQLiteMessageRepository struct {
	db *sql.DB
}

// OpenSQLiteMessageRepository abre (o crea) la base y asegura el esquema.
// Usar ":memory:" como path en tests.
func OpenSQLiteMessageRepository(path string) (*SQLiteMessageRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Una sola conexion evita errores "database is locked".
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS messages (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			session_id TEXT,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id);
		CREATE INDEX IF NOT EXISTS idx_messages_user ON messages(user_id);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteMessageRepository{db: db}, nil
}

func (r *SQLiteMessageRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteMessageRepository) Create(ctx context.Context, message domain.Message) error {
	const query = `
		INSERT INTO messages (id, user_id, session_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	var sessionID interface{}
	if message.SessionID != "" {
		sessionID = message.SessionID
	}
	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.UserID,
		sessionID,
		message.Role,
		message.Content,
		message.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (r *SQLiteMessageRepository) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Message, error) {
	const query = `
		SELECT id, user_id, session_id, role, content, created_at
		FROM messages
		WHERE session_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLiteMessages(rows)
}

func (r *SQLiteMessageRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Message, error) {
	const query = `
		SELECT id, user_id, session_id, role, content, created_at
		FROM messages
		WHERE user_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSQLiteMessages(rows)
}

func scanSQLiteMessages(rows *sql.Rows) ([]domain.Message, error) {
	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var sessionID sql.NullString
		var createdAt string

		err := rows.Scan(
			&msg.ID,
			&msg.UserID,
			&sessionID,
			&msg.Role,
			&msg.Content,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}
		if sessionID.Valid {
			msg.SessionID = sessionID.String
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			msg.CreatedAt = ts
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
