package router

import "github.com/gin-gonic/gin"

func (r *Router) courseRoutes(version *gin.RouterGroup) {
	courses := version.Group("/courses")
	{
		courses.GET("", r.courseHandler.List)
		courses.GET("/:id", r.courseHandler.GetByID)

		protected := courses.Group("")
		protected.Use(r.jwtMw.RequireAuth(), r.jwtMw.RequireRole("publisher", "admin"))
		{
			protected.DELETE("/:id", r.courseHandler.Delete)
		}
	}
}
