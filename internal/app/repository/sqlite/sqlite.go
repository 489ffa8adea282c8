package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/karimnaderr/speech-to-text-backend/internal/app/model"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
)

// SQLiteDB implements repository.TranscriptDAO on a local SQLite file.
// It exists for development and single-machine deployments; production runs
// against PostgreSQL.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens the database file, creating it if necessary.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) Init(ctx context.Context) error {
	createSQL := `
		CREATE TABLE IF NOT EXISTS transcript (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			filename   TEXT NOT NULL,
			text       TEXT,
			status     TEXT NOT NULL,
			sentiment  TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`

	if _, err := sdb.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("create transcript table: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) Create(ctx context.Context, filename, text, status, sentiment string) (*model.Transcript, error) {
	insertSQL := `INSERT INTO transcript (filename, text, status, sentiment) VALUES (?, ?, ?, ?)`

	textValue := sql.NullString{String: text, Valid: text != ""}

	result, err := sdb.db.ExecContext(ctx, insertSQL, filename, textValue, status, sentiment)
	if err != nil {
		return nil, fmt.Errorf("insert transcript: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	// Read the row back so the caller sees the database-assigned timestamp.
	return sdb.Get(ctx, int(id))
}

func (sdb *SQLiteDB) List(ctx context.Context) ([]model.Transcript, error) {
	query := `
		SELECT id, filename, COALESCE(text, ''), status, sentiment, created_at
		FROM transcript
		ORDER BY created_at DESC, id DESC`

	rows, err := sdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	transcripts := make([]model.Transcript, 0)
	for rows.Next() {
		var t model.Transcript
		err = rows.Scan(&t.ID, &t.Filename, &t.Text, &t.Status, &t.Sentiment, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		transcripts = append(transcripts, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return transcripts, nil
}

func (sdb *SQLiteDB) Get(ctx context.Context, id int) (*model.Transcript, error) {
	query := `
		SELECT id, filename, COALESCE(text, ''), status, sentiment, created_at
		FROM transcript
		WHERE id = ?`

	var t model.Transcript
	err := sdb.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Filename, &t.Text, &t.Status, &t.Sentiment, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return &t, nil
}
