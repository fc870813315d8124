package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/campushq-id/bootcamp-api/config"
	"github.com/campushq-id/bootcamp-api/internal/constants"
	"github.com/campushq-id/bootcamp-api/internal/handler"
	"github.com/campushq-id/bootcamp-api/internal/middleware"
)

type Router struct {
	bootcampHandler *handler.BootcampHandler
	courseHandler   *handler.CourseHandler
	authHandler     *handler.AuthHandler
	healthHandler   *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	config *config.Config
}

func NewRouter(
	bootcamp *handler.BootcampHandler,
	course *handler.CourseHandler,
	auth *handler.AuthHandler,
	health *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		bootcampHandler: bootcamp,
		courseHandler:   course,
		authHandler:     auth,
		healthHandler:   health,
		jwtMw:           jwtMw,
		config:          cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidators()

	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestContext())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.config.RateLimit.Requests, r.config.RateLimit.Window))

			r.authRoutes(v1)
			r.bootcampRoutes(v1)
			r.courseRoutes(v1)
		}
	}

	return router
}

// registerValidators installs the career field validator into gin's binding
// engine.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("career", func(fl validator.FieldLevel) bool {
			return constants.IsValidCareer(fl.Field().String())
		})
	}
}
