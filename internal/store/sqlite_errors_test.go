package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smkhize/erfsite/internal/model"
)

// These tests inject driver failures with sqlmock to check that the
// SQLite backend wraps and propagates store errors instead of
// swallowing them.

func newMockStore(t *testing.T) (*SQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLite(db), mock
}

func TestListStandsQueryError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectQuery("SELECT (.+) FROM stands").WillReturnError(errors.New("disk I/O error"))

	_, err := s.ListStands(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing stands")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStandExecError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("INSERT INTO stands").WillReturnError(errors.New("database is locked"))

	_, err := s.CreateStand(context.Background(), model.StandInput{
		Title: "t", Description: "d", Price: "1", Size: "s", Location: "l",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating stand")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkMessageReadExecError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("UPDATE contact_messages").WillReturnError(errors.New("database is locked"))

	_, err := s.MarkMessageRead(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marking message read")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGalleryImageExecError(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectExec("DELETE FROM gallery_images").WillReturnError(errors.New("disk I/O error"))

	_, err := s.DeleteGalleryImage(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deleting gallery image")
	assert.NoError(t, mock.ExpectationsWereMet())
}
