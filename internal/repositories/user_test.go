package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	assert.NoError(t, err)
	// A fresh connection would be a fresh in-memory database.
	db.SetMaxOpenConns(1)

	err = Migrate(context.Background(), db)
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_SeedsDefaultAdmin(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	reader := NewUserReadRepository(db)
	admin, err := reader.GetByUsername(ctx, "admin")
	assert.NoError(t, err)
	assert.NotNil(t, admin)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "admin@example.com", admin.Email)

	err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123"))
	assert.NoError(t, err)

	// Running migrations again must not duplicate the admin.
	err = Migrate(ctx, db)
	assert.NoError(t, err)

	var count int
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE username = 'admin'`)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	id, err := writer.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)
	assert.Greater(t, id, int64(0))

	user, err := reader.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserWriteRepository_Save_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)

	_, err := writer.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	// Same username, different email: the UNIQUE constraint backstops the
	// non-atomic existence check in the service.
	_, err = writer.Save(ctx, "alice", "other@example.com", "hash456")
	assert.Error(t, err)

	// Same email, different username.
	_, err = writer.Save(ctx, "bob", "alice@example.com", "hash789")
	assert.Error(t, err)

	var count int
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE username = 'alice'`)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserReadRepository_GetByUsername_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	reader := NewUserReadRepository(db)

	user, err := reader.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	_, err := writer.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	// Match by username.
	user, err := reader.GetByUsernameOrEmail(ctx, "alice", "nomatch@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)

	// Match by email.
	user, err = reader.GetByUsernameOrEmail(ctx, "nomatch", "alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)

	// No match.
	user, err = reader.GetByUsernameOrEmail(ctx, "nomatch", "nomatch@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserReadRepository_ListAll_OmitsPasswordHashes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	_, err := writer.Save(ctx, "alice", "alice@example.com", "hash123")
	assert.NoError(t, err)

	users, err := reader.ListAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2) // seeded admin + alice
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
