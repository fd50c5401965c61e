package app

import (
	"vidya_backend/docs"
	"vidya_backend/internal/config"
	"vidya_backend/internal/middleware"
	"vidya_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		curriculum := public.Group("/curriculum")
		{
			curriculum.GET("/boards", c.curriculum.ListBoards)
			curriculum.GET("/boards/:boardId/classes", c.curriculum.ListClasses)
			curriculum.GET("/classes/:classId/subjects", c.curriculum.ListSubjects)
			curriculum.GET("/subjects/:subjectId/chapters", c.curriculum.ListChapters)
			curriculum.GET("/chapters/:chapterId", c.curriculum.GetChapter)
		}
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.auth.UpdateProfile)
		authGroup.GET("/profile/progress", c.auth.GetProgress)

		authGroup.GET("/curriculum/my", c.curriculum.MyCurriculum)

		content := authGroup.Group("/content")
		{
			content.GET("/video/:chapterId", c.content.GetVideo)
			content.GET("/quiz/:chapterId", c.content.GetQuiz)
			content.POST("/video/:contentId/complete", c.content.MarkVideoCompleted)
			content.POST("/quiz/:contentId/submit", c.content.SubmitQuiz)
			content.GET("/stats", c.content.GetStats)
		}

		admin := authGroup.Group("/admin")
		{
			admin.POST("/chapters/:chapterId/video", c.content.UploadChapterVideo)
		}
	}
}
