package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/telos-labs/recommend/internal/store"
)

type PostgresStore struct {
	db *sql.DB
}

var openDB = sql.Open

func New(conn string) (*PostgresStore, error) {
	db, err := openDB("pgx", conn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := verifySchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func verifySchema(ctx context.Context, db *sql.DB) error {
	required := []string{
		"activity_log",
		"recommendations",
	}
	for _, table := range required {
		var regclass sql.NullString
		if err := db.QueryRowContext(ctx, "SELECT to_regclass($1)", fmt.Sprintf("public.%s", table)).Scan(&regclass); err != nil {
			return err
		}
		if !regclass.Valid {
			return fmt.Errorf("database schema missing: %s table not found (run infra/migrations/001_init.sql)", table)
		}
	}
	return nil
}

func (p *PostgresStore) AddActivity(ctx context.Context, activity store.Activity) error {
	const query = `
		INSERT INTO activity_log (id, user_id, action, context, timestamp)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := p.db.ExecContext(
		ctx,
		query,
		activity.ID,
		activity.UserID,
		activity.Action,
		nullString(activity.Context),
		activity.Timestamp,
	)
	return err
}

func (p *PostgresStore) ListActivities(ctx context.Context, userID string, limit int) ([]store.Activity, error) {
	if limit <= 0 {
		return []store.Activity{}, nil
	}
	const query = `
		SELECT id, user_id, action, context, timestamp
		FROM activity_log
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`
	rows, err := p.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []store.Activity{}
	for rows.Next() {
		var activity store.Activity
		var activityContext sql.NullString
		if err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.Action,
			&activityContext,
			&activity.Timestamp,
		); err != nil {
			return nil, err
		}
		if activityContext.Valid {
			activity.Context = activityContext.String
		}
		activity.Timestamp = activity.Timestamp.UTC()
		results = append(results, activity)
	}
	return results, rows.Err()
}

// AddRecommendations writes the whole batch in one transaction so a
// partial failure never leaves a truncated batch behind.
func (p *PostgresStore) AddRecommendations(ctx context.Context, recs []store.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO recommendations (id, user_id, recommendation_text, priority, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, rec := range recs {
		if _, err := tx.ExecContext(
			ctx,
			query,
			rec.ID,
			rec.UserID,
			nullString(rec.Text),
			nullString(rec.Priority),
			nullString(rec.Reason),
			string(rec.Status),
			rec.CreatedAt,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (p *PostgresStore) ListRecommendations(ctx context.Context, userID string) ([]store.Recommendation, error) {
	const query = `
		SELECT id, user_id, recommendation_text, priority, reason, status, created_at
		FROM recommendations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := p.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []store.Recommendation{}
	for rows.Next() {
		var rec store.Recommendation
		var text sql.NullString
		var priority sql.NullString
		var reason sql.NullString
		var status string
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&text,
			&priority,
			&reason,
			&status,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		if text.Valid {
			rec.Text = text.String
		}
		if priority.Valid {
			rec.Priority = priority.String
		}
		if reason.Valid {
			rec.Reason = reason.String
		}
		rec.Status = store.RecommendationStatus(status)
		rec.CreatedAt = rec.CreatedAt.UTC()
		results = append(results, rec)
	}
	return results, rows.Err()
}

func nullString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
