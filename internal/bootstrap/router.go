package bootstrap

import (
	"database/sql"

	httpapi "github.com/buildtrack/construction-api/internal/api/http"
	"github.com/buildtrack/construction-api/internal/api/http/middleware"
	"github.com/buildtrack/construction-api/internal/assignments"
	"github.com/buildtrack/construction-api/internal/companies"
	"github.com/buildtrack/construction-api/internal/importer"
	"github.com/buildtrack/construction-api/internal/profanity"
	"github.com/buildtrack/construction-api/internal/projects"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Filter      profanity.Filter
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())

	projectRepo := projects.NewRepo(dep.DB)
	companyRepo := companies.NewRepo(dep.DB)
	assignmentRepo := assignments.NewRepo(dep.DB)

	projectsGroup := api.Group("/projects")
	projects.Register(projectsGroup, projectRepo, dep.Filter)
	importer.Register(projectsGroup, importer.NewPipeline(projectRepo, dep.Filter))

	companies.Register(api.Group("/companies"), companyRepo)
	assignments.Register(api.Group("/assignments"), assignmentRepo)

	return r
}
