package repositories

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

// TrainingLogRepository appends generation events to a flat JSON array file.
// The file is an unstructured log, not a data pipeline; a missing or corrupt
// file is treated as empty and rewritten.
type TrainingLogRepository struct {
	path string
}

func NewTrainingLogRepository(path string) *TrainingLogRepository {
	return &TrainingLogRepository{path: path}
}

// Append reads the current log, appends the entry, and rewrites the file.
func (r *TrainingLogRepository) Append(ctx context.Context, entry models.TrainingEntry) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	var entries []models.TrainingEntry
	if raw, err := os.ReadFile(r.path); err == nil {
		if err := json.Unmarshal(raw, &entries); err != nil {
			logger.Log.Warnw("training log unreadable, starting fresh", "path", r.path, "error", err)
			entries = nil
		}
	}

	entries = append(entries, entry)

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	err = os.WriteFile(r.path, raw, 0o644)

	logger.Log.Infow("training log append",
		"path", r.path,
		"entries", len(entries),
		"error", err,
	)

	return err
}
