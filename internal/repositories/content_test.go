package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestContentWriteRepository_SaveAndListByUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userWriter := NewUserWriteRepository(db)
	userID, err := userWriter.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	writer := NewContentWriteRepository(db)
	reader := NewContentReadRepository(db)

	first, err := writer.Save(ctx, &userID, "solar energy", "tweet one", nil)
	assert.NoError(t, err)
	second, err := writer.Save(ctx, &userID, "wind power", "tweet two", strPtr("/images/wind.png"))
	assert.NoError(t, err)

	content, err := reader.ListByUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, content, 2)

	// Newest first.
	assert.Equal(t, second, content[0].ID)
	assert.Equal(t, first, content[1].ID)

	assert.Equal(t, "wind power", content[0].Prompt)
	assert.NotNil(t, content[0].ImageURL)
	assert.Equal(t, "/images/wind.png", *content[0].ImageURL)
	assert.Nil(t, content[1].ImageURL)
	assert.False(t, content[0].IsPosted)
}

func TestContentReadRepository_ListAll_IncludesOwner(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userWriter := NewUserWriteRepository(db)
	userID, err := userWriter.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	writer := NewContentWriteRepository(db)
	reader := NewContentReadRepository(db)

	_, err = writer.Save(ctx, &userID, "solar energy", "tweet one", nil)
	assert.NoError(t, err)

	all, err := reader.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.NotNil(t, all[0].OwnerUsername)
	assert.Equal(t, "alice", *all[0].OwnerUsername)
}

func TestContentWriteRepository_MarkPosted_OwnerChecked(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userWriter := NewUserWriteRepository(db)
	alice, err := userWriter.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)
	bob, err := userWriter.Save(ctx, "bob", "bob@example.com", "hash456")
	assert.NoError(t, err)

	writer := NewContentWriteRepository(db)
	reader := NewContentReadRepository(db)

	contentID, err := writer.Save(ctx, &alice, "solar energy", "tweet one", nil)
	assert.NoError(t, err)

	// Another user cannot publish Alice's content.
	ok, err := writer.MarkPosted(ctx, contentID, bob)
	assert.NoError(t, err)
	assert.False(t, ok)

	content, err := reader.ListByUser(ctx, alice)
	assert.NoError(t, err)
	assert.False(t, content[0].IsPosted)

	// The owner can.
	ok, err = writer.MarkPosted(ctx, contentID, alice)
	assert.NoError(t, err)
	assert.True(t, ok)

	content, err = reader.ListByUser(ctx, alice)
	assert.NoError(t, err)
	assert.True(t, content[0].IsPosted)

	// Publishing twice is a state no-op that still matches.
	ok, err = writer.MarkPosted(ctx, contentID, alice)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestContentWriteRepository_MarkPosted_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	writer := NewContentWriteRepository(db)

	ok, err := writer.MarkPosted(ctx, 9999, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestContentWriteRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	userWriter := NewUserWriteRepository(db)
	alice, err := userWriter.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	writer := NewContentWriteRepository(db)
	reader := NewContentReadRepository(db)

	contentID, err := writer.Save(ctx, &alice, "solar energy", "tweet one", nil)
	assert.NoError(t, err)

	ok, err := writer.Delete(ctx, contentID)
	assert.NoError(t, err)
	assert.True(t, ok)

	content, err := reader.ListByUser(ctx, alice)
	assert.NoError(t, err)
	assert.Empty(t, content)

	all, err := reader.ListAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	// Deleting again reports not found.
	ok, err = writer.Delete(ctx, contentID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestContentWriteRepository_Save_DBError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlite3")
	writer := NewContentWriteRepository(db)

	mock.ExpectExec("INSERT INTO generated_content").
		WillReturnError(errors.New("disk I/O error"))

	_, err = writer.Save(context.Background(), nil, "prompt", "tweet", nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentReadRepository_ListByUser_DBError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlite3")
	reader := NewContentReadRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM generated_content").
		WillReturnError(errors.New("database is locked"))

	_, err = reader.ListByUser(context.Background(), 1)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
