package services

import (
	"context"

	"github.com/sbilibin2017/gw-tweet-studio/internal/hub"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

// ContentReader defines read-only operations for generated content.
type ContentReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.ContentDB, error)
	ListAll(ctx context.Context) ([]models.ContentWithOwner, error)
}

// ContentWriter defines write operations for generated content.
type ContentWriter interface {
	Save(ctx context.Context, userID *int64, prompt, tweet string, imageURL *string) (int64, error)
	MarkPosted(ctx context.Context, contentID, userID int64) (bool, error)
	Delete(ctx context.Context, contentID int64) (bool, error)
}

// ContentService handles listing, publishing, and deleting generated content.
type ContentService struct {
	reader      ContentReader
	writer      ContentWriter
	broadcaster Broadcaster
}

// NewContentService creates a new ContentService instance.
func NewContentService(reader ContentReader, writer ContentWriter, broadcaster Broadcaster) *ContentService {
	return &ContentService{
		reader:      reader,
		writer:      writer,
		broadcaster: broadcaster,
	}
}

// ListUserContent returns the user's content, newest first.
func (svc *ContentService) ListUserContent(ctx context.Context, userID int64) ([]models.ContentDB, error) {
	return svc.reader.ListByUser(ctx, userID)
}

// ListAllContent returns everyone's content with owner usernames, newest
// first, for the admin dashboard.
func (svc *ContentService) ListAllContent(ctx context.Context) ([]models.ContentWithOwner, error) {
	return svc.reader.ListAll(ctx)
}

// Publish marks the content as posted. The row must belong to the caller;
// publishing someone else's content reports not-found. Re-publishing an
// already-posted row is a state no-op that still re-emits the event.
func (svc *ContentService) Publish(ctx context.Context, contentID int64, identity *models.Identity) error {
	ok, err := svc.writer.MarkPosted(ctx, contentID, identity.UserID)
	if err != nil {
		logger.Log.Errorw("failed to mark content posted", "content_id", contentID, "err", err)
		return err
	}
	if !ok {
		return ErrContentNotFound
	}

	svc.broadcaster.Broadcast(hub.EventContentUpdate, map[string]any{
		"action":     "content_published",
		"user_id":    identity.UserID,
		"username":   identity.Username,
		"content_id": contentID,
	})

	return nil
}

// Delete removes a content row. Admin-only; the route guard is upstream and
// no ownership check applies here.
func (svc *ContentService) Delete(ctx context.Context, contentID int64, adminUsername string) error {
	ok, err := svc.writer.Delete(ctx, contentID)
	if err != nil {
		logger.Log.Errorw("failed to delete content", "content_id", contentID, "err", err)
		return err
	}
	if !ok {
		return ErrContentNotFound
	}

	svc.broadcaster.Broadcast(hub.EventContentUpdate, map[string]any{
		"action":     "content_deleted",
		"content_id": contentID,
		"admin_user": adminUsername,
	})

	return nil
}
