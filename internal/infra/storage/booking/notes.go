package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
	"github.com/m04kA/BookEasy-Service/pkg/psqlbuilder"
)

// AddNote добавляет заметку к бронированию
func (r *Repository) AddNote(ctx context.Context, note *domain.BookingNote) (*domain.BookingNote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("booking_notes").
		Columns("id", "booking_id", "content").
		Values(note.ID, note.BookingID, note.Content).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddNote - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: AddNote - execute insert: %w", ErrExecQuery, err)
	}
	note.CreatedAt = createdAt.Time

	return note, nil
}

// ListNotes возвращает заметки бронирования, новые первыми
func (r *Repository) ListNotes(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingNote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "content", "created_at").
		From("booking_notes").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNotes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	notes := make([]domain.BookingNote, 0)
	for rows.Next() {
		var note domain.BookingNote
		if err := rows.Scan(&note.ID, &note.BookingID, &note.Content, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListNotes - scan row: %w", ErrScanRow, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNotes - rows error: %w", ErrScanRow, err)
	}

	return notes, nil
}
