package app

import (
	"lernraum_backend/docs"
	"lernraum_backend/internal/config"
	"lernraum_backend/internal/middleware"
	"lernraum_backend/internal/model"
	"lernraum_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)
	a.registerMemberRoutes(router, c, repos, cfg)
	a.registerAdminRoutes(router, c, cfg)
}

// registerPublicRoutes: erreichbar ohne Login. Listen nutzen TryAuth, damit
// eingeloggte Mitglieder mehr sehen.
func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)

		public.GET("/news", middleware.TryAuthMiddleware(a.Config), c.news.ListNews)
		public.GET("/news/:slug", middleware.TryAuthMiddleware(a.Config), c.news.GetNews)

		public.GET("/tools/featured", middleware.TryAuthMiddleware(a.Config), c.tool.ListFeatured)

		// Umfragen sind über ihren Token erreichbar; ob ein Login nötig ist,
		// entscheidet die Umfrage selbst
		public.GET("/surveys/:token", middleware.TryAuthMiddleware(a.Config), c.survey.GetByToken)
		public.POST("/surveys/:token/responses", middleware.TryAuthMiddleware(a.Config), c.survey.Submit)
	}
}

func (a *App) registerMemberRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	member := router.Group("/api")
	member.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		member.GET("/auth/me", c.auth.Me)
		member.PUT("/auth/password", c.auth.ChangePassword)
		member.PUT("/users/me", c.user.UpdateProfile)
		member.GET("/users/:id", c.user.GetUser)

		member.GET("/weeks", c.week.ListWeeks)
		member.GET("/weeks/current", c.week.CurrentWeek)
		member.GET("/weeks/:number", c.week.GetWeek)

		member.GET("/forum/categories", c.forum.ListCategories)
		member.GET("/forum/categories/:slug/topics", c.forum.ListTopics)
		member.POST("/forum/categories/:slug/topics", c.forum.CreateTopic)
		member.GET("/forum/topics/:id", c.forum.GetTopic)
		member.POST("/forum/topics/:id/posts", c.forum.CreatePost)
		member.DELETE("/forum/topics/:id", c.forum.DeleteTopic)
		member.DELETE("/forum/posts/:id", c.forum.DeletePost)

		member.GET("/questions", c.qa.ListQuestions)
		member.POST("/questions", c.qa.CreateQuestion)
		member.GET("/questions/:id", c.qa.GetQuestion)
		member.POST("/questions/:id/answers", c.qa.CreateAnswer)
		member.PUT("/questions/:id/resolved", c.qa.SetResolved)
		member.DELETE("/questions/:id", c.qa.DeleteQuestion)
		member.DELETE("/answers/:id", c.qa.DeleteAnswer)

		member.GET("/projects", c.project.ListProjects)
		member.POST("/projects", c.project.CreateProject)
		member.GET("/projects/:slug", c.project.GetProject)
		member.PUT("/projects/:slug", c.project.UpdateProject)
		member.DELETE("/projects/:slug", c.project.DeleteProject)
		member.POST("/projects/:slug/join", c.project.Join)
		member.DELETE("/projects/:slug/join", c.project.Leave)
		member.POST("/projects/:slug/comments", c.project.AddComment)
		member.DELETE("/projects/comments/:commentId", c.project.DeleteComment)

		member.GET("/tools", c.tool.ListTools)
		member.POST("/tools", c.tool.CreateTool)
		member.POST("/tools/:id/like", c.tool.ToggleLike)
		member.GET("/tools/:id/comments", c.tool.ListComments)
		member.POST("/tools/:id/comments", c.tool.AddComment)
		member.DELETE("/tools/:id", c.tool.DeleteTool)
		member.DELETE("/tools/comments/:commentId", c.tool.DeleteComment)

		member.GET("/presentations", c.presentation.ListSlots)
		member.POST("/presentations", c.presentation.CreateSlot)
		member.PUT("/presentations/:id", c.presentation.UpdateSlot)
		member.DELETE("/presentations/:id", c.presentation.DeleteSlot)

		member.POST("/ideas/generate", c.idea.GenerateIdea)

		member.POST("/files", c.file.Upload)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)

		admin.GET("/invites", c.invite.ListInvites)
		admin.POST("/invites", c.invite.CreateInvite)
		admin.DELETE("/invites/:id", c.invite.DeleteInvite)

		admin.POST("/news", c.news.CreateNews)
		admin.PUT("/news/:id", c.news.UpdateNews)
		admin.DELETE("/news/:id", c.news.DeleteNews)

		admin.POST("/weeks", c.week.CreateWeek)
		admin.PUT("/weeks/:id", c.week.UpdateWeek)
		admin.DELETE("/weeks/:id", c.week.DeleteWeek)
		admin.POST("/weeks/:id/files", c.week.UploadFile)
		admin.DELETE("/weeks/files/:fileId", c.week.DeleteFile)

		admin.POST("/forum/categories", c.forum.CreateCategory)
		admin.PUT("/forum/topics/:id/pinned", c.forum.SetPinned)
		admin.PUT("/forum/topics/:id/locked", c.forum.SetLocked)

		admin.POST("/tools/featured", c.tool.CreateFeatured)
		admin.PUT("/tools/featured/:id", c.tool.UpdateFeatured)
		admin.DELETE("/tools/featured/:id", c.tool.DeleteFeatured)
		admin.POST("/tools/featured/:id/image", c.tool.UploadFeaturedImage)

		admin.GET("/surveys", c.survey.ListSurveys)
		admin.POST("/surveys", c.survey.CreateSurvey)
		admin.GET("/surveys/:id", c.survey.GetSurvey)
		admin.PUT("/surveys/:id", c.survey.UpdateSurvey)
		admin.PUT("/surveys/:id/active", c.survey.SetActive)
		admin.DELETE("/surveys/:id", c.survey.DeleteSurvey)
		admin.GET("/surveys/:id/results", c.survey.Results)
		admin.GET("/surveys/:id/export", c.survey.ExportCSV)
		admin.POST("/surveys/:id/questions", c.survey.AddQuestion)
		admin.PUT("/surveys/:id/questions/:questionId", c.survey.UpdateQuestion)
		admin.DELETE("/surveys/:id/questions/:questionId", c.survey.DeleteQuestion)
	}
}
