package controller

import (
	"errors"

	"vidya_backend/internal/service"
	"vidya_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CurriculumController struct {
	CurriculumService *service.CurriculumService
	UserService       *service.UserService
}

func NewCurriculumController(curriculumService *service.CurriculumService, userService *service.UserService) *CurriculumController {
	return &CurriculumController{
		CurriculumService: curriculumService,
		UserService:       userService,
	}
}

// ListBoards godoc
// @Summary List education boards
// @Tags curriculum
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Board}
// @Router /api/curriculum/boards [get]
func (c *CurriculumController) ListBoards(ctx *gin.Context) {
	boards, err := c.CurriculumService.ListBoards()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, boards)
}

// ListClasses godoc
// @Summary List classes of a board
// @Tags curriculum
// @Produce  json
// @Param   boardId path string true "board id"
// @Success 200 {object} util.Response{data=[]model.Class}
// @Failure 404 {object} util.Response "board not found"
// @Router /api/curriculum/boards/{boardId}/classes [get]
func (c *CurriculumController) ListClasses(ctx *gin.Context) {
	classes, err := c.CurriculumService.ListClasses(ctx.Param("boardId"))
	if err != nil {
		if errors.Is(err, util.ErrBoardNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, classes)
}

// ListSubjects godoc
// @Summary List subjects of a class
// @Tags curriculum
// @Produce  json
// @Param   classId path string true "class id"
// @Success 200 {object} util.Response{data=[]model.Subject}
// @Failure 404 {object} util.Response "class not found"
// @Router /api/curriculum/classes/{classId}/subjects [get]
func (c *CurriculumController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.CurriculumService.ListSubjects(ctx.Param("classId"))
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subjects)
}

// ListChapters godoc
// @Summary List chapters of a subject
// @Tags curriculum
// @Produce  json
// @Param   subjectId path string true "subject id"
// @Success 200 {object} util.Response{data=[]model.Chapter}
// @Failure 404 {object} util.Response "subject not found"
// @Router /api/curriculum/subjects/{subjectId}/chapters [get]
func (c *CurriculumController) ListChapters(ctx *gin.Context) {
	chapters, err := c.CurriculumService.ListChapters(ctx.Param("subjectId"))
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapters)
}

// GetChapter godoc
// @Summary Chapter detail with curriculum context and any generated content
// @Tags curriculum
// @Produce  json
// @Param   chapterId path string true "chapter id"
// @Success 200 {object} util.Response{data=model.ChapterDetail}
// @Failure 404 {object} util.Response "chapter not found"
// @Router /api/curriculum/chapters/{chapterId} [get]
func (c *CurriculumController) GetChapter(ctx *gin.Context) {
	detail, err := c.CurriculumService.GetChapterDetail(ctx.Param("chapterId"))
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

// MyCurriculum godoc
// @Summary Subjects of the caller's selected class
// @Tags curriculum
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Subject}
// @Failure 400 {object} util.Response "no class selected"
// @Router /api/curriculum/my [get]
func (c *CurriculumController) MyCurriculum(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	subjects, err := c.CurriculumService.ListSubjectsForUser(user)
	if err != nil {
		if errors.Is(err, util.ErrNoClassSelected) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, subjects)
}
