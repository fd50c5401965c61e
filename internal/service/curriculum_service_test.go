package service

import (
	"errors"
	"testing"

	"vidya_backend/internal/model"
	"vidya_backend/internal/util"
)

func TestCurriculumLookups(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCurriculumService(env.currRepo, env.contentRepo)

	boards, err := svc.ListBoards()
	if err != nil {
		t.Fatalf("ListBoards: %v", err)
	}
	if len(boards) != 1 || boards[0].Name != "CBSE" {
		t.Errorf("boards = %+v", boards)
	}

	classes, err := svc.ListClasses(testBoardID)
	if err != nil {
		t.Fatalf("ListClasses: %v", err)
	}
	if len(classes) != 1 || classes[0].ClassNumber != 9 {
		t.Errorf("classes = %+v", classes)
	}

	subjects, err := svc.ListSubjects(testClassID)
	if err != nil {
		t.Fatalf("ListSubjects: %v", err)
	}
	if len(subjects) != 1 || subjects[0].Name != "Physics" {
		t.Errorf("subjects = %+v", subjects)
	}

	chapters, err := svc.ListChapters(testSubjectID)
	if err != nil {
		t.Fatalf("ListChapters: %v", err)
	}
	if len(chapters) != 1 || chapters[0].Name != "Motion" {
		t.Errorf("chapters = %+v", chapters)
	}
}

func TestCurriculumNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCurriculumService(env.currRepo, env.contentRepo)

	if _, err := svc.ListClasses("nope"); !errors.Is(err, util.ErrBoardNotFound) {
		t.Errorf("ListClasses error = %v, want ErrBoardNotFound", err)
	}
	if _, err := svc.ListSubjects("nope"); !errors.Is(err, util.ErrClassNotFound) {
		t.Errorf("ListSubjects error = %v, want ErrClassNotFound", err)
	}
	if _, err := svc.ListChapters("nope"); !errors.Is(err, util.ErrSubjectNotFound) {
		t.Errorf("ListChapters error = %v, want ErrSubjectNotFound", err)
	}
	if _, err := svc.GetChapter("nope"); !errors.Is(err, util.ErrChapterNotFound) {
		t.Errorf("GetChapter error = %v, want ErrChapterNotFound", err)
	}
}

func TestGetChapterMeta(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCurriculumService(env.currRepo, env.contentRepo)

	meta, err := svc.GetChapter(testChapterID)
	if err != nil {
		t.Fatalf("GetChapter: %v", err)
	}
	if meta.ChapterName != "Motion" || meta.SubjectName != "Physics" ||
		meta.ClassNumber != 9 || meta.BoardName != "CBSE" {
		t.Errorf("meta = %+v", meta)
	}
}

func TestGetChapterDetailIncludesExistingContent(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCurriculumService(env.currRepo, env.contentRepo)

	video := insertVideoContent(t, env)

	detail, err := svc.GetChapterDetail(testChapterID)
	if err != nil {
		t.Fatalf("GetChapterDetail: %v", err)
	}
	if detail.ChapterName != "Motion" || detail.BoardName != "CBSE" {
		t.Errorf("meta = %+v", detail.ChapterMeta)
	}
	if detail.Video == nil || detail.Video.ID != video.ID {
		t.Errorf("Video = %+v, want row %s", detail.Video, video.ID)
	}
	if detail.Quiz != nil {
		t.Errorf("Quiz = %+v, want nil before generation", detail.Quiz)
	}
}

func TestGetChapterDetailEmptyChapter(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCurriculumService(env.currRepo, env.contentRepo)

	detail, err := svc.GetChapterDetail(testChapterID)
	if err != nil {
		t.Fatalf("GetChapterDetail: %v", err)
	}
	if detail.Video != nil || detail.Quiz != nil {
		t.Errorf("detail = %+v, want no content", detail)
	}

	if _, err := svc.GetChapterDetail("nope"); !errors.Is(err, util.ErrChapterNotFound) {
		t.Errorf("error = %v, want ErrChapterNotFound", err)
	}
}

func TestListSubjectsForUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCurriculumService(env.currRepo, env.contentRepo)

	noSelection := &model.User{}
	if _, err := svc.ListSubjectsForUser(noSelection); !errors.Is(err, util.ErrNoClassSelected) {
		t.Errorf("error = %v, want ErrNoClassSelected", err)
	}

	classID := testClassID
	selected := &model.User{SelectedClassID: &classID}
	subjects, err := svc.ListSubjectsForUser(selected)
	if err != nil {
		t.Fatalf("ListSubjectsForUser: %v", err)
	}
	if len(subjects) != 1 {
		t.Errorf("subjects = %+v", subjects)
	}
}
