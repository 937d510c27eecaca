package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/paste"
)

// ListFilter narrows List results.
type ListFilter struct {
	// ClassName matches the base class exactly. Empty matches every class.
	ClassName      string
	IncludeDeleted bool
}

// Insert stores a new paste in the database.
func Insert(ctx context.Context, db *sql.DB, p *paste.Paste) error {
	query := `
		INSERT INTO pastes (
			id, title, code, level, class_name,
			ascendancy, main_skill, created_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL)
	`

	_, err := db.ExecContext(ctx, query,
		p.ID, p.Title, p.Code, p.Level, p.ClassName,
		toNullString(p.Ascendancy), toNullString(p.MainSkill), p.CreatedAt,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetByID retrieves a paste by its ULID.
// If includeDeleted is false, soft-deleted pastes are excluded.
func GetByID(ctx context.Context, db *sql.DB, id string, includeDeleted bool) (*paste.Paste, error) {
	query := `
		SELECT id, title, code, level, class_name,
			ascendancy, main_skill, created_at, deleted_at
		FROM pastes
		WHERE id = ?
	`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	var (
		p          paste.Paste
		ascendancy sql.NullString
		mainSkill  sql.NullString
		deletedAt  sql.NullInt64
	)
	err := db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Code, &p.Level, &p.ClassName,
		&ascendancy, &mainSkill, &p.CreatedAt, &deletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	p.Ascendancy = fromNullString(ascendancy)
	p.MainSkill = fromNullString(mainSkill)
	p.DeletedAt = fromNullInt64(deletedAt)

	return &p, nil
}

// List returns paste summaries newest first, plus the total number of
// matching pastes ignoring limit and offset.
func List(ctx context.Context, db *sql.DB, filter ListFilter, limit, offset int) ([]paste.Summary, int, error) {
	where := " WHERE 1=1"
	var args []any
	if filter.ClassName != "" {
		where += " AND class_name = ?"
		args = append(args, filter.ClassName)
	}
	if !filter.IncludeDeleted {
		where += " AND deleted_at IS NULL"
	}

	var total int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pastes"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	query := `
		SELECT id, title, level, class_name, ascendancy, main_skill,
			length(code), created_at, deleted_at
		FROM pastes` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`
	rows, err := db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.NewInternal(err)
	}
	defer rows.Close()

	var summaries []paste.Summary
	for rows.Next() {
		var (
			s          paste.Summary
			ascendancy sql.NullString
			mainSkill  sql.NullString
			deletedAt  sql.NullInt64
		)
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Level, &s.ClassName, &ascendancy, &mainSkill,
			&s.CodeBytes, &s.CreatedAt, &deletedAt,
		); err != nil {
			return nil, 0, errors.NewInternal(err)
		}
		s.Ascendancy = fromNullString(ascendancy)
		s.MainSkill = fromNullString(mainSkill)
		s.DeletedAt = fromNullInt64(deletedAt)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.NewInternal(err)
	}

	return summaries, total, nil
}

// SoftDelete marks a paste as deleted by setting deleted_at.
func SoftDelete(ctx context.Context, db *sql.DB, id string) error {
	now := time.Now().Unix()

	query := `
		UPDATE pastes
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := db.ExecContext(ctx, query, now, id)
	if err != nil {
		return errors.NewInternal(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.NewInternal(err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFound(id)
	}

	return nil
}

// PurgeDeleted permanently removes soft-deleted pastes. With olderThanDays
// set, only pastes deleted before now minus that many days are removed.
func PurgeDeleted(ctx context.Context, db *sql.DB, olderThanDays *int) (int, error) {
	query := "DELETE FROM pastes WHERE deleted_at IS NOT NULL"
	var args []any
	if olderThanDays != nil {
		cutoff := time.Now().AddDate(0, 0, -*olderThanDays).Unix()
		query += " AND deleted_at < ?"
		args = append(args, cutoff)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.NewInternal(err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewInternal(err)
	}
	return int(n), nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func fromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}
