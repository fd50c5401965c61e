package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"vidya_backend/internal/generator"
	"vidya_backend/internal/model"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/util"
	"vidya_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const contentCacheTTL = 6 * time.Hour

// ContentService serves chapter content, generating it on first access.
// Reads go through Redis when available; the database row is the source of
// truth and the unique (chapter, type) index arbitrates concurrent creates.
type ContentService struct {
	ContentRepo    *repository.ContentRepository
	CurriculumRepo *repository.CurriculumRepository
	Generator      *generator.Chain
	Redis          *redis.Client
	Storage        *StorageService
}

func NewContentService(
	contentRepo *repository.ContentRepository,
	curriculumRepo *repository.CurriculumRepository,
	gen *generator.Chain,
	rdb *redis.Client,
	storage *StorageService,
) *ContentService {
	return &ContentService{
		ContentRepo:    contentRepo,
		CurriculumRepo: curriculumRepo,
		Generator:      gen,
		Redis:          rdb,
		Storage:        storage,
	}
}

func contentCacheKey(chapterID string, contentType model.ContentType) string {
	return fmt.Sprintf("content:%s:%s", chapterID, contentType)
}

// GetOrCreate returns the content item for a chapter and type, generating
// and persisting it if none exists yet. Concurrent callers for the same pair
// all end up with the same row: the loser of the insert race re-reads the
// winner's row and discards its own payload.
func (s *ContentService) GetOrCreate(ctx context.Context, chapterID string, contentType model.ContentType) (*model.ContentItem, error) {
	if cached := s.cacheGet(ctx, chapterID, contentType); cached != nil {
		return cached, nil
	}

	item, err := s.ContentRepo.FindByChapterAndType(chapterID, contentType)
	if err == nil {
		s.cacheSet(ctx, item)
		return item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	meta, err := s.CurriculumRepo.GetChapterMeta(chapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	data, err := s.generate(ctx, *meta, contentType)
	if err != nil {
		return nil, err
	}

	item = &model.ContentItem{
		ChapterID:   chapterID,
		ContentType: contentType,
		Data:        data,
	}
	if err := s.ContentRepo.Create(item); err != nil {
		if repository.IsDuplicate(err) {
			// Another request inserted first; serve its row.
			winner, readErr := s.ContentRepo.FindByChapterAndType(chapterID, contentType)
			if readErr != nil {
				return nil, readErr
			}
			s.cacheSet(ctx, winner)
			return winner, nil
		}
		return nil, err
	}

	s.cacheSet(ctx, item)
	return item, nil
}

func (s *ContentService) generate(ctx context.Context, meta model.ChapterMeta, contentType model.ContentType) (json.RawMessage, error) {
	switch contentType {
	case model.ContentQuiz:
		payload, err := s.Generator.GenerateQuiz(ctx, meta)
		if err != nil {
			return nil, err
		}
		return json.Marshal(payload)
	case model.ContentVideo:
		payload, err := s.Generator.GenerateVideo(ctx, meta)
		if err != nil {
			return nil, err
		}
		return json.Marshal(payload)
	default:
		return nil, fmt.Errorf("unknown content type %q", contentType)
	}
}

// ReplaceVideo swaps the generated video of a chapter for an uploaded file.
// The upload is staged to disk so its real duration can be probed before it
// goes to the storage backend.
func (s *ContentService) ReplaceVideo(ctx context.Context, chapterID, filename string, reader io.Reader, size int64, contentType string) (*model.ContentItem, error) {
	meta, err := s.CurriculumRepo.GetChapterMeta(chapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	duration := generator.VideoDuration
	if info, probeErr := util.ProbeVideo(tmp.Name()); probeErr == nil && info.Duration > 0 {
		duration = int(info.Duration)
	} else if probeErr != nil {
		logger.Log.Warn("could not probe uploaded video, keeping default duration",
			zap.String("chapter", chapterID),
			zap.Error(probeErr),
		)
	}

	objectName := fmt.Sprintf("videos/%s/%s", chapterID, filename)
	url, err := s.Storage.UploadFile(ctx, objectName, tmp.Name(), contentType)
	if err != nil {
		return nil, err
	}

	payload := generator.VideoPayload{
		Script:   fmt.Sprintf("Uploaded lesson video for %s.", meta.ChapterName),
		VideoURL: url,
		Duration: duration,
	}

	// Preserve the generated script if a video row already exists.
	existing, err := s.ContentRepo.FindByChapterAndType(chapterID, model.ContentVideo)
	if err == nil {
		var prev generator.VideoPayload
		if json.Unmarshal(existing.Data, &prev) == nil && prev.Script != "" {
			payload.Script = prev.Script
		}
		data, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, marshalErr
		}
		existing.Data = data
		if err := s.ContentRepo.Update(existing); err != nil {
			return nil, err
		}
		s.cacheInvalidate(ctx, chapterID, model.ContentVideo)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	item := &model.ContentItem{
		ChapterID:   chapterID,
		ContentType: model.ContentVideo,
		Data:        data,
	}
	if err := s.ContentRepo.Create(item); err != nil {
		return nil, err
	}
	s.cacheInvalidate(ctx, chapterID, model.ContentVideo)
	return item, nil
}

func (s *ContentService) cacheGet(ctx context.Context, chapterID string, contentType model.ContentType) *model.ContentItem {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, contentCacheKey(chapterID, contentType)).Result()
	if err != nil {
		return nil
	}
	var item model.ContentItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil
	}
	return &item
}

func (s *ContentService) cacheSet(ctx context.Context, item *model.ContentItem) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, contentCacheKey(item.ChapterID, item.ContentType), raw, contentCacheTTL).Err(); err != nil {
		logger.Log.Warn("content cache write failed", zap.Error(err))
	}
}

func (s *ContentService) cacheInvalidate(ctx context.Context, chapterID string, contentType model.ContentType) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, contentCacheKey(chapterID, contentType)).Err(); err != nil {
		logger.Log.Warn("content cache invalidation failed", zap.Error(err))
	}
}
