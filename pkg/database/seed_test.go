package database

import (
	"testing"

	"vidya_backend/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func seededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	if err := SeedCurriculum(db); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	return db
}

func TestSeedCurriculumCounts(t *testing.T) {
	db := seededDB(t)

	var boards, classes, subjects, chapters int64
	db.Model(&model.Board{}).Count(&boards)
	db.Model(&model.Class{}).Count(&classes)
	db.Model(&model.Subject{}).Count(&subjects)
	db.Model(&model.Chapter{}).Count(&chapters)

	if boards != 3 {
		t.Errorf("boards = %d, want 3", boards)
	}
	if classes != 36 {
		t.Errorf("classes = %d, want 36", classes)
	}
	if subjects != 360 {
		t.Errorf("subjects = %d, want 360", subjects)
	}
	// 19 physics + 15 chemistry + 16 mathematics chapters per board.
	if chapters != 150 {
		t.Errorf("chapters = %d, want 150", chapters)
	}
}

func TestSeedCurriculumDeterministicIDs(t *testing.T) {
	db := seededDB(t)

	var chapter model.Chapter
	err := db.First(&chapter, "id = ?", "board-cbse-class-9-physics-motion").Error
	if err != nil {
		t.Fatalf("expected deterministic chapter id: %v", err)
	}
	if chapter.Name != "Motion" || chapter.ChapterNumber != 1 {
		t.Errorf("chapter = %+v", chapter)
	}

	var subject model.Subject
	err = db.First(&subject, "id = ?", "board-icse-class-10-computer-science").Error
	if err != nil {
		t.Fatalf("expected deterministic subject id: %v", err)
	}
	if subject.Name != "Computer Science" {
		t.Errorf("subject = %+v", subject)
	}
}

func TestSeedCurriculumIdempotent(t *testing.T) {
	db := seededDB(t)

	if err := SeedCurriculum(db); err != nil {
		t.Fatalf("reseeding: %v", err)
	}

	var boards int64
	db.Model(&model.Board{}).Count(&boards)
	if boards != 3 {
		t.Errorf("boards after reseed = %d, want 3", boards)
	}
}

func TestChapterSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Motion", "motion"},
		{"Force and Laws of Motion", "force-and-laws-of-motion"},
		{"Light - Reflection and Refraction", "light-reflection-and-refraction"},
		{"Work, Energy and Power", "work-energy-and-power"},
	}
	for _, tt := range tests {
		if got := chapterSlug(tt.in); got != tt.want {
			t.Errorf("chapterSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
