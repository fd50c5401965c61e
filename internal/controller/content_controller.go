package controller

import (
	"errors"

	"vidya_backend/internal/model"
	"vidya_backend/internal/service"
	"vidya_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService  *service.ContentService
	QuizService     *service.QuizService
	ProgressService *service.ProgressService
	UserService     *service.UserService
}

func NewContentController(
	contentService *service.ContentService,
	quizService *service.QuizService,
	progressService *service.ProgressService,
	userService *service.UserService,
) *ContentController {
	return &ContentController{
		ContentService:  contentService,
		QuizService:     quizService,
		ProgressService: progressService,
		UserService:     userService,
	}
}

// GetVideo godoc
// @Summary Video content for a chapter, generated on first access
// @Tags content
// @Produce  json
// @Security BearerAuth
// @Param   chapterId path string true "chapter id"
// @Success 200 {object} util.Response{data=model.ContentItem}
// @Failure 404 {object} util.Response "chapter not found"
// @Router /api/content/video/{chapterId} [get]
func (c *ContentController) GetVideo(ctx *gin.Context) {
	c.getOrCreate(ctx, model.ContentVideo)
}

// GetQuiz godoc
// @Summary Quiz content for a chapter, generated on first access
// @Tags content
// @Produce  json
// @Security BearerAuth
// @Param   chapterId path string true "chapter id"
// @Success 200 {object} util.Response{data=model.ContentItem}
// @Failure 404 {object} util.Response "chapter not found"
// @Router /api/content/quiz/{chapterId} [get]
func (c *ContentController) GetQuiz(ctx *gin.Context) {
	c.getOrCreate(ctx, model.ContentQuiz)
}

func (c *ContentController) getOrCreate(ctx *gin.Context, contentType model.ContentType) {
	item, err := c.ContentService.GetOrCreate(ctx.Request.Context(), ctx.Param("chapterId"), contentType)
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, item)
}

// MarkVideoCompleted godoc
// @Summary Mark a video as watched
// @Description First completion awards points; repeat calls are no-ops
// @Tags content
// @Produce  json
// @Security BearerAuth
// @Param   contentId path string true "video content id"
// @Success 200 {object} util.Response{data=service.CompletionResult}
// @Failure 404 {object} util.Response "video content not found"
// @Router /api/content/video/{contentId}/complete [post]
func (c *ContentController) MarkVideoCompleted(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.ProgressService.MarkCompleted(claims.UserID, ctx.Param("contentId"))
	if err != nil {
		if errors.Is(err, util.ErrContentNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers []string `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Tags content
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   contentId path string true "quiz content id"
// @Param   body body SubmitQuizRequest true "one answer per question, in order"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response "answers do not match the question set"
// @Failure 404 {object} util.Response "quiz content not found"
// @Router /api/content/quiz/{contentId}/submit [post]
func (c *ContentController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, ctx.Param("contentId"), req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrMalformedSubmission):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// GetStats godoc
// @Summary Aggregate learning stats for the caller
// @Tags content
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserStats}
// @Router /api/content/stats [get]
func (c *ContentController) GetStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.UserService.GetStats(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, stats)
}

// UploadChapterVideo godoc
// @Summary Replace a chapter's video with an uploaded file
// @Tags admin
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   chapterId path string true "chapter id"
// @Param   file formData file true "video file"
// @Success 200 {object} util.Response{data=model.ContentItem}
// @Failure 404 {object} util.Response "chapter not found"
// @Router /api/admin/chapters/{chapterId}/video [post]
func (c *ContentController) UploadChapterVideo(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}

	item, err := c.ContentService.ReplaceVideo(
		ctx.Request.Context(),
		ctx.Param("chapterId"),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		contentType,
	)
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, item)
}
