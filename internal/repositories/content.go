package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

type ContentReadRepository struct {
	db *sqlx.DB
}

func NewContentReadRepository(db *sqlx.DB) *ContentReadRepository {
	return &ContentReadRepository{db: db}
}

// ListByUser returns the user's generated content, newest first.
func (r *ContentReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.ContentDB, error) {
	const query = `
		SELECT id, user_id, prompt, generated_tweet, image_url, is_posted, created_at
		FROM generated_content
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	var content []models.ContentDB
	err := r.db.SelectContext(ctx, &content, query, userID)

	logger.Log.Infow("content list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(content),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return content, nil
}

// ListAll returns all generated content with owner usernames, newest first.
func (r *ContentReadRepository) ListAll(ctx context.Context) ([]models.ContentWithOwner, error) {
	const query = `
		SELECT gc.id, gc.user_id, gc.prompt, gc.generated_tweet, gc.image_url,
		       gc.is_posted, gc.created_at, u.username AS owner_username
		FROM generated_content gc
		LEFT JOIN users u ON gc.user_id = u.id
		ORDER BY gc.created_at DESC, gc.id DESC
	`

	var content []models.ContentWithOwner
	err := r.db.SelectContext(ctx, &content, query)

	logger.Log.Infow("content list all",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(content),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return content, nil
}

type ContentWriteRepository struct {
	db *sqlx.DB
}

func NewContentWriteRepository(db *sqlx.DB) *ContentWriteRepository {
	return &ContentWriteRepository{db: db}
}

// Save inserts a generated content row and returns its id.
func (r *ContentWriteRepository) Save(ctx context.Context, userID *int64, prompt, tweet string, imageURL *string) (int64, error) {
	const query = `
		INSERT INTO generated_content (user_id, prompt, generated_tweet, image_url)
		VALUES (?, ?, ?, ?)
	`
	args := []any{userID, prompt, tweet, imageURL}

	res, err := r.db.ExecContext(ctx, query, args...)

	var id int64
	if res != nil {
		id, _ = res.LastInsertId()
	}

	logger.Log.Infow("content save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// MarkPosted flips the posted flag for a row matched by both id and owner.
// Returns false when no row matched, so a user cannot publish someone else's
// content. Publishing an already-posted row still matches and reports true.
func (r *ContentWriteRepository) MarkPosted(ctx context.Context, contentID, userID int64) (bool, error) {
	const query = `
		UPDATE generated_content
		SET is_posted = TRUE
		WHERE id = ? AND user_id = ?
	`
	args := []any{contentID, userID}

	res, err := r.db.ExecContext(ctx, query, args...)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("content mark posted",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// Delete removes a content row by id. No ownership check: the admin route
// guard is upstream. Returns false when the row did not exist.
func (r *ContentWriteRepository) Delete(ctx context.Context, contentID int64) (bool, error) {
	const query = `
		DELETE FROM generated_content
		WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, contentID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("content delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{contentID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
