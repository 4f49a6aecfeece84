package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/dbx"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
)

var psq = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var entryColumns = []string{"id", "user_id", "title", "content", "ai_insight", "created_at", "updated_at"}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (models.Entry, error) {
	var e models.Entry
	err := s.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.AIInsight, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Entry, error) {
	query, args, err := psq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Entry, error) {
	query, args, err := psq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Entry) error {
	query, args, err := psq.Insert("entries").
		Columns(entryColumns...).
		Values(e.ID, e.UserID, e.Title, e.Content, e.AIInsight, e.CreatedAt, e.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Entry) error {
	query, args, err := psq.Update("entries").
		Set("title", e.Title).
		Set("content", e.Content).
		Set("ai_insight", e.AIInsight).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID, "user_id": e.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update: %w", err)
	}

	return r.execOne(ctx, query, args)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query, args, err := psq.Delete("entries").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete: %w", err)
	}

	return r.execOne(ctx, query, args)
}

// execOne runs a statement that must touch exactly one owned row.
func (r *PostgresRepository) execOne(ctx context.Context, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
