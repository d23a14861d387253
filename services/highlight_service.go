package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pmsa-qul/artsfest/models"
	"github.com/pmsa-qul/artsfest/storage"
)

// HighlightBatchSize - сколько изображений одновременно показывает экран TV.
const HighlightBatchSize = 6

// placeholderObject - служебный объект, который консоль хранилища создаёт в пустых папках.
const placeholderObject = ".emptyFolderPlaceholder"

type HighlightPage struct {
	Highlights []models.Highlight `json:"highlights"`
	Batch      int                `json:"batch"`
	BatchCount int                `json:"batch_count"`
}

type HighlightService interface {
	List(ctx context.Context) ([]models.Highlight, error)
	// Batch возвращает n-ю группу из HighlightBatchSize изображений, по кругу.
	Batch(ctx context.Context, n int) (*HighlightPage, error)
	Upload(ctx context.Context, principal models.Principal, reader io.Reader, contentType string) (*models.Highlight, error)
	Delete(ctx context.Context, principal models.Principal, key string) error
}

type highlightService struct {
	store  storage.BlobStore
	prefix string
	logger *slog.Logger
}

// NewHighlightService допускает nil вместо хранилища: список тогда пуст,
// а загрузка возвращает ErrHighlightsUnavailable.
func NewHighlightService(store storage.BlobStore, prefix string, logger *slog.Logger) HighlightService {
	if logger == nil {
		logger = slog.Default()
	}
	return &highlightService{store: store, prefix: prefix, logger: logger}
}

func (s *highlightService) List(ctx context.Context) ([]models.Highlight, error) {
	if s.store == nil {
		return []models.Highlight{}, nil
	}
	objects, err := s.store.List(ctx, s.prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list highlights: %w", err)
	}

	keys := make([]string, 0, len(objects))
	for _, obj := range objects {
		if obj.Key == "" || strings.HasSuffix(obj.Key, "/") || path.Base(obj.Key) == placeholderObject {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	highlights := make([]models.Highlight, 0, len(keys))
	for _, key := range keys {
		url := s.store.GetPublicURL(key)
		if url == "" {
			continue
		}
		highlights = append(highlights, models.Highlight{Key: key, URL: url})
	}
	return highlights, nil
}

func (s *highlightService) Batch(ctx context.Context, n int) (*HighlightPage, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return &HighlightPage{Highlights: []models.Highlight{}}, nil
	}

	count := (len(all) + HighlightBatchSize - 1) / HighlightBatchSize
	batch := n % count
	if batch < 0 {
		batch += count
	}
	start := batch * HighlightBatchSize
	end := start + HighlightBatchSize
	if end > len(all) {
		end = len(all)
	}
	return &HighlightPage{Highlights: all[start:end], Batch: batch, BatchCount: count}, nil
}

func (s *highlightService) Upload(ctx context.Context, principal models.Principal, reader io.Reader, contentType string) (*models.Highlight, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrHighlightsUnavailable
	}
	ext, err := GetExtensionFromContentType(contentType)
	if err != nil {
		return nil, err
	}

	key := s.prefix + uuid.NewString() + ext
	result, err := s.store.Upload(ctx, key, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to upload highlight: %w", err)
	}
	s.logger.InfoContext(ctx, "highlight uploaded", slog.String("key", result.Key), slog.String("admin_id", principal.AdminID))
	return &models.Highlight{Key: result.Key, URL: result.Location}, nil
}

func (s *highlightService) Delete(ctx context.Context, principal models.Principal, key string) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if s.store == nil {
		return ErrHighlightsUnavailable
	}
	key = strings.TrimPrefix(key, "/")
	if key == "" || !strings.HasPrefix(key, s.prefix) || strings.Contains(key, "..") {
		return ErrHighlightNotFound
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete highlight %s: %w", key, err)
	}
	s.logger.InfoContext(ctx, "highlight deleted", slog.String("key", key), slog.String("admin_id", principal.AdminID))
	return nil
}
