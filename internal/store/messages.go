package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/smkhize/erfsite/internal/model"
)

// CreateContactMessage stores a contact-form submission. The read flag
// always starts false regardless of the request body.
func (s *SQLite) CreateContactMessage(ctx context.Context, in model.ContactMessageInput) (*model.ContactMessage, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (first_name, last_name, email, phone, message)
		 VALUES (?, ?, ?, ?, ?)`,
		in.FirstName, in.LastName, in.Email, nullString(in.Phone), in.Message,
	)
	if err != nil {
		return nil, fmt.Errorf("creating contact message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting contact message id: %w", err)
	}

	return s.GetContactMessage(ctx, id)
}

// GetContactMessage returns a contact message by ID.
func (s *SQLite) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{}
	var phone sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email, phone, message, read, created_at
		 FROM contact_messages WHERE id = ?`, id,
	).Scan(&msg.ID, &msg.FirstName, &msg.LastName, &msg.Email, &phone, &msg.Message, &msg.Read, &msg.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact message: %w", err)
	}
	msg.Phone = phone.String
	return msg, nil
}

// ListContactMessages returns all contact messages, newest first.
func (s *SQLite) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, email, phone, message, read, created_at
		 FROM contact_messages ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	var messages []model.ContactMessage
	for rows.Next() {
		var msg model.ContactMessage
		var phone sql.NullString
		if err := rows.Scan(&msg.ID, &msg.FirstName, &msg.LastName, &msg.Email, &phone, &msg.Message, &msg.Read, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		msg.Phone = phone.String
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// MarkMessageRead flips the read flag to true. Reports true even if the
// message was already read, false only for unknown ids.
func (s *SQLite) MarkMessageRead(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		`UPDATE contact_messages SET read = 1 WHERE id = ?`, id,
	)
	if err != nil {
		return false, fmt.Errorf("marking message read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking message read: %w", err)
	}
	return affected > 0, nil
}

// CountUnreadMessages returns the number of unread messages, for the
// admin dashboard.
func (s *SQLite) CountUnreadMessages(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE read = 0`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting unread messages: %w", err)
	}
	return count, nil
}
