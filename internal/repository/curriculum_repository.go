package repository

import (
	"vidya_backend/internal/model"

	"gorm.io/gorm"
)

// CurriculumRepository is the read-only lookup over the board/class/subject/
// chapter tree. The tree is seeded once and never written at runtime.
type CurriculumRepository struct {
	DB *gorm.DB
}

func NewCurriculumRepository(db *gorm.DB) *CurriculumRepository {
	return &CurriculumRepository{DB: db}
}

func (r *CurriculumRepository) ListBoards() ([]model.Board, error) {
	var boards []model.Board
	err := r.DB.Where("is_active = ?", true).Order("name").Find(&boards).Error
	return boards, err
}

func (r *CurriculumRepository) FindBoard(id string) (*model.Board, error) {
	var board model.Board
	err := r.DB.First(&board, "id = ?", id).Error
	return &board, err
}

func (r *CurriculumRepository) ListClasses(boardID string) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.Where("board_id = ? AND is_active = ?", boardID, true).
		Order("class_number").
		Find(&classes).Error
	return classes, err
}

func (r *CurriculumRepository) FindClass(id string) (*model.Class, error) {
	var class model.Class
	err := r.DB.First(&class, "id = ?", id).Error
	return &class, err
}

func (r *CurriculumRepository) FindClassInBoard(classID, boardID string) (*model.Class, error) {
	var class model.Class
	err := r.DB.Where("id = ? AND board_id = ?", classID, boardID).First(&class).Error
	return &class, err
}

func (r *CurriculumRepository) ListSubjects(classID string) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("class_id = ? AND is_active = ?", classID, true).
		Order("name").
		Find(&subjects).Error
	return subjects, err
}

func (r *CurriculumRepository) FindSubject(id string) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, "id = ?", id).Error
	return &subject, err
}

func (r *CurriculumRepository) ListChapters(subjectID string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Where("subject_id = ? AND is_active = ?", subjectID, true).
		Order("chapter_number").
		Find(&chapters).Error
	return chapters, err
}

// GetChapterMeta resolves a chapter together with its subject, class and
// board names in one join; this denormalized row is the generator's input.
func (r *CurriculumRepository) GetChapterMeta(chapterID string) (*model.ChapterMeta, error) {
	var meta model.ChapterMeta
	err := r.DB.Table("chapters").
		Select("chapters.id, chapters.name AS chapter_name, chapters.chapter_number, subjects.name AS subject_name, classes.class_number, boards.name AS board_name").
		Joins("JOIN subjects ON chapters.subject_id = subjects.id").
		Joins("JOIN classes ON subjects.class_id = classes.id").
		Joins("JOIN boards ON classes.board_id = boards.id").
		Where("chapters.id = ?", chapterID).
		Take(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}
