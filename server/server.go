package server

import (
	"os"

	"content-server/db"
	"content-server/entities"
	httpHandler "content-server/handlers/http"
	"content-server/repositories"
	"content-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	s := &Server{
		app: gin.Default(),
		db:  database,
	}
	s.setupRoutes()
	return s
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine { return s.app }

// requestID tags every request with an X-Request-ID, generating one when the
// caller did not send it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))
	s.app.Use(requestID())

	s.app.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Content Management API",
		})
	})

	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// One handler per generic record kind, all built from the same binder.
	podcastHandler := httpHandler.NewCrudHandler(
		usecases.NewCrudUseCase[entities.Podcast, *entities.Podcast](
			repositories.NewCrudPgRepository[entities.Podcast](s.db)))
	podcastHandler.RegisterRoutes(s.app.Group("/podcasts"))

	publicationHandler := httpHandler.NewCrudHandler(
		usecases.NewCrudUseCase[entities.Publication, *entities.Publication](
			repositories.NewCrudPgRepository[entities.Publication](s.db)))
	publicationHandler.RegisterRoutes(s.app.Group("/publications"))

	summaryHandler := httpHandler.NewCrudHandler(
		usecases.NewCrudUseCase[entities.ContentSummary, *entities.ContentSummary](
			repositories.NewCrudPgRepository[entities.ContentSummary](s.db)))
	summaryHandler.RegisterRoutes(s.app.Group("/content_summaries"))

	contentHandler := httpHandler.NewCrudHandler(
		usecases.NewCrudUseCase[entities.GeneratedContent, *entities.GeneratedContent](
			repositories.NewCrudPgRepository[entities.GeneratedContent](s.db)))
	contentHandler.RegisterRoutes(s.app.Group("/generated_content"))

	// Users get a dedicated handler for password hashing.
	userHandler := httpHandler.NewUserHandler(
		usecases.NewUserUseCase(
			repositories.NewCrudPgRepository[entities.User](s.db)))
	userHandler.RegisterRoutes(s.app.Group("/users"))
}

func (s *Server) Start() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := s.app.Run("0.0.0.0:" + port); err != nil {
		panic(err)
	}
}
