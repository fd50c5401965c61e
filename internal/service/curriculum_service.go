package service

import (
	"errors"

	"vidya_backend/internal/model"
	"vidya_backend/internal/repository"
	"vidya_backend/internal/util"

	"gorm.io/gorm"
)

type CurriculumService struct {
	CurriculumRepo *repository.CurriculumRepository
	ContentRepo    *repository.ContentRepository
}

func NewCurriculumService(curriculumRepo *repository.CurriculumRepository, contentRepo *repository.ContentRepository) *CurriculumService {
	return &CurriculumService{
		CurriculumRepo: curriculumRepo,
		ContentRepo:    contentRepo,
	}
}

func (s *CurriculumService) ListBoards() ([]model.Board, error) {
	return s.CurriculumRepo.ListBoards()
}

func (s *CurriculumService) ListClasses(boardID string) ([]model.Class, error) {
	if _, err := s.CurriculumRepo.FindBoard(boardID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrBoardNotFound
		}
		return nil, err
	}
	return s.CurriculumRepo.ListClasses(boardID)
}

func (s *CurriculumService) ListSubjects(classID string) ([]model.Subject, error) {
	if _, err := s.CurriculumRepo.FindClass(classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	return s.CurriculumRepo.ListSubjects(classID)
}

func (s *CurriculumService) GetChapter(chapterID string) (*model.ChapterMeta, error) {
	meta, err := s.CurriculumRepo.GetChapterMeta(chapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return meta, nil
}

// GetChapterDetail serves the chapter-detail view: the meta row plus any
// content already generated for the chapter. Missing content is not
// generated here; the slot stays nil until the content endpoint is hit.
func (s *CurriculumService) GetChapterDetail(chapterID string) (*model.ChapterDetail, error) {
	meta, err := s.GetChapter(chapterID)
	if err != nil {
		return nil, err
	}

	items, err := s.ContentRepo.ListByChapter(chapterID)
	if err != nil {
		return nil, err
	}

	detail := &model.ChapterDetail{ChapterMeta: *meta}
	for i := range items {
		switch items[i].ContentType {
		case model.ContentVideo:
			detail.Video = &items[i]
		case model.ContentQuiz:
			detail.Quiz = &items[i]
		}
	}
	return detail, nil
}

// ListSubjectsForUser serves the "my curriculum" view based on the user's
// stored class selection.
func (s *CurriculumService) ListSubjectsForUser(user *model.User) ([]model.Subject, error) {
	if user.SelectedClassID == nil {
		return nil, util.ErrNoClassSelected
	}
	return s.ListSubjects(*user.SelectedClassID)
}

func (s *CurriculumService) ListChapters(subjectID string) ([]model.Chapter, error) {
	if _, err := s.CurriculumRepo.FindSubject(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}
	return s.CurriculumRepo.ListChapters(subjectID)
}
