package app

import (
	"skillpath_backend/internal/config"
	"skillpath_backend/internal/middleware"
	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// assessments and quiz sessions work for both anonymous and
	// authenticated users
	tryAuth := router.Group("/api")
	tryAuth.Use(middleware.TryAuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		tryAuth.POST("/assessments/start", c.assessment.Start)
		tryAuth.POST("/assessments/:id/submit", c.assessment.Submit)
		tryAuth.GET("/assessments/:id/result", c.assessment.Result)

		tryAuth.POST("/quiz/start", c.quiz.Start)
		tryAuth.POST("/quiz/:id/advance", c.quiz.Advance)
		tryAuth.GET("/quiz/:id", c.quiz.Get)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.Profile)
		authGroup.GET("/quiz/:id/advice", c.quiz.Advice)

		resume := authGroup.Group("/resume")
		{
			resume.POST("/upload", c.resume.Upload)
			resume.POST("/analyze", c.resume.Analyze)
			resume.GET("/history", c.resume.History)
		}
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/questions", c.catalog.ListQuestions)
		admin.POST("/questions", c.catalog.CreateQuestion)
		admin.PUT("/questions/:id", c.catalog.UpdateQuestion)
		admin.DELETE("/questions/:id", c.catalog.DeleteQuestion)

		admin.GET("/domains", c.catalog.ListDomains)
		admin.POST("/domains", c.catalog.CreateDomain)
		admin.PUT("/domains/:id", c.catalog.UpdateDomain)
		admin.DELETE("/domains/:id", c.catalog.DeleteDomain)
	}
}
