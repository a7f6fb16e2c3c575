// Package store persists users and notes behind database/sql.
//
// Every note-scoped operation takes the caller's user id explicitly;
// nothing here reads identity from ambient state.
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vkozyrev/zametki/internal/models"
	"github.com/vkozyrev/zametki/internal/slug"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateNote inserts a new note. When noteSlug is empty it is derived from the
// title. The slug must be unique across all users; the pre-check and the
// insert run in one transaction, with the UNIQUE index as the backstop for
// concurrent creates, so a collision never leaves a partial write.
func (s *Store) CreateNote(ctx context.Context, title, text string, authorID int, noteSlug string) (*models.Note, error) {
	if noteSlug == "" {
		noteSlug = slug.Slugify(title)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var taken int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notes WHERE slug = ?", noteSlug,
	).Scan(&taken); err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, &DuplicateSlugError{Slug: noteSlug}
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO notes (title, text, slug, author_id) VALUES (?, ?, ?, ?)",
		title, text, noteSlug, authorID,
	)
	if err != nil {
		if isDuplicateErr(err) {
			return nil, &DuplicateSlugError{Slug: noteSlug}
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return s.getByID(ctx, int(id))
}

// GetNote looks a note up by slug with no owner scoping.
func (s *Store) GetNote(ctx context.Context, noteSlug string) (*models.Note, error) {
	return s.scanNote(s.db.QueryRowContext(ctx,
		"SELECT id, title, text, slug, author_id, created_at, updated_at FROM notes WHERE slug = ?",
		noteSlug,
	))
}

// GetOwnedNote is the authorization gate: it resolves the slug only within the
// caller's namespace. A note owned by someone else and a note that does not
// exist both come back as ErrNotFound.
func (s *Store) GetOwnedNote(ctx context.Context, noteSlug string, authorID int) (*models.Note, error) {
	return s.scanNote(s.db.QueryRowContext(ctx,
		"SELECT id, title, text, slug, author_id, created_at, updated_at FROM notes WHERE slug = ? AND author_id = ?",
		noteSlug, authorID,
	))
}

// UpdateNote changes title and text of the caller's note. Slug and author are
// immutable through this path.
func (s *Store) UpdateNote(ctx context.Context, noteSlug string, authorID int, title, text string) (*models.Note, error) {
	n, err := s.GetOwnedNote(ctx, noteSlug, authorID)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE notes SET title = ?, text = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		title, text, n.ID,
	)
	if err != nil {
		return nil, err
	}

	return s.getByID(ctx, n.ID)
}

// DeleteNote removes the caller's note. Deleting a note you do not own is
// indistinguishable from deleting one that does not exist.
func (s *Store) DeleteNote(ctx context.Context, noteSlug string, authorID int) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM notes WHERE slug = ? AND author_id = ?",
		noteSlug, authorID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListNotesByAuthor returns exactly the caller's notes, oldest first.
func (s *Store) ListNotesByAuthor(ctx context.Context, authorID int) ([]models.Note, error) {
	return s.queryNotes(ctx,
		"SELECT id, title, text, slug, author_id, created_at, updated_at FROM notes WHERE author_id = ? ORDER BY id",
		authorID,
	)
}

// ListNotes returns every note in the store, oldest first.
func (s *Store) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.queryNotes(ctx,
		"SELECT id, title, text, slug, author_id, created_at, updated_at FROM notes ORDER BY id",
	)
}

// CountNotes returns the total number of notes across all users.
func (s *Store) CountNotes(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notes").Scan(&n)
	return n, err
}

func (s *Store) getByID(ctx context.Context, id int) (*models.Note, error) {
	return s.scanNote(s.db.QueryRowContext(ctx,
		"SELECT id, title, text, slug, author_id, created_at, updated_at FROM notes WHERE id = ?",
		id,
	))
}

func (s *Store) scanNote(row *sql.Row) (*models.Note, error) {
	var n models.Note
	err := row.Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Store) queryNotes(ctx context.Context, query string, args ...interface{}) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
