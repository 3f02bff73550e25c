package calllog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres archives entries in a call_logs table.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPool builds the shared connection pool for the archive.
func NewPool(dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = 5
	cfg.MaxConnLifetime = time.Hour

	return pgxpool.NewWithConfig(context.Background(), cfg)
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Init creates the call_logs table if it does not exist yet.
func (p *Postgres) Init(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS call_logs (
			id            TEXT PRIMARY KEY,
			caller_number TEXT NOT NULL,
			caller_name   TEXT NOT NULL,
			intent        TEXT NOT NULL,
			sentiment     TEXT NOT NULL,
			duration      INTEGER NOT NULL,
			start_time    TIMESTAMPTZ NOT NULL,
			end_time      TIMESTAMPTZ NOT NULL,
			outcome       TEXT NOT NULL
		)
	`)
	return err
}

func (p *Postgres) Record(ctx context.Context, e Entry) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO call_logs (
			id, caller_number, caller_name, intent,
			sentiment, duration, start_time, end_time, outcome
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`,
		e.ID, e.CallerNumber, e.CallerName, e.Intent,
		e.Sentiment, e.Duration, e.StartTime, e.EndTime, e.Outcome,
	)
	return err
}

func (p *Postgres) List(ctx context.Context, f Filter) ([]Entry, error) {
	query := `
		SELECT
			id, caller_number, caller_name, intent,
			sentiment, duration, start_time, end_time, outcome
		FROM call_logs
	`
	var (
		args []any
		cond string
	)
	if f.Sentiment != "" {
		args = append(args, f.Sentiment)
		cond = fmt.Sprintf(" WHERE sentiment = $%d", len(args))
	}
	if f.Intent != "" {
		args = append(args, f.Intent)
		if cond == "" {
			cond = fmt.Sprintf(" WHERE intent = $%d", len(args))
		} else {
			cond += fmt.Sprintf(" AND intent = $%d", len(args))
		}
	}
	query += cond + " ORDER BY end_time DESC"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.CallerNumber, &e.CallerName, &e.Intent,
			&e.Sentiment, &e.Duration, &e.StartTime, &e.EndTime, &e.Outcome,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
