package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/karimnaderr/speech-to-text-backend/internal/app/model"
	"github.com/karimnaderr/speech-to-text-backend/internal/app/repository"
)

// PostgresDB implements repository.TranscriptDAO on PostgreSQL.
type PostgresDB struct {
	db *sql.DB
}

// NewPostgresDB opens a connection pool for the given connection string and
// verifies connectivity.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresDB{db: db}, nil
}

func (pdb *PostgresDB) Close() error {
	return pdb.db.Close()
}

// Init creates the transcript table if it does not exist. No destructive
// migration logic lives here; schema changes are a manual operation.
func (pdb *PostgresDB) Init(ctx context.Context) error {
	createSQL := `
		CREATE TABLE IF NOT EXISTS transcript (
			id         SERIAL PRIMARY KEY,
			filename   TEXT NOT NULL,
			text       TEXT,
			status     TEXT NOT NULL,
			sentiment  TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := pdb.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("create transcript table: %w", err)
	}
	return nil
}

func (pdb *PostgresDB) Create(ctx context.Context, filename, text, status, sentiment string) (*model.Transcript, error) {
	insertSQL := `
		INSERT INTO transcript (filename, text, status, sentiment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	t := model.Transcript{
		Filename:  filename,
		Text:      text,
		Status:    status,
		Sentiment: sentiment,
	}

	// Failed transcriptions store NULL rather than an empty string.
	textValue := sql.NullString{String: text, Valid: text != ""}

	err := pdb.db.QueryRowContext(ctx, insertSQL, filename, textValue, status, sentiment).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transcript: %w", err)
	}

	return &t, nil
}

func (pdb *PostgresDB) List(ctx context.Context) ([]model.Transcript, error) {
	query := `
		SELECT id, filename, COALESCE(text, ''), status, sentiment, created_at
		FROM transcript
		ORDER BY created_at DESC, id DESC`

	rows, err := pdb.db.QueryContext(ctx, query)
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

func (pdb *PostgresDB) Get(ctx context.Context, id int) (*model.Transcript, error) {
	query := `
		SELECT id, filename, COALESCE(text, ''), status, sentiment, created_at
		FROM transcript
		WHERE id = $1`

	var t model.Transcript
	err := pdb.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Filename, &t.Text, &t.Status, &t.Sentiment, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return &t, nil
}
