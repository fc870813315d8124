package router

import "github.com/gin-gonic/gin"

func (r *Router) bootcampRoutes(version *gin.RouterGroup) {
	bootcamps := version.Group("/bootcamps")
	{
		// Public reads
		bootcamps.GET("", r.bootcampHandler.List)
		bootcamps.GET("/:id", r.bootcampHandler.GetByID)
		bootcamps.GET("/radius/:zipcode/:distance", r.bootcampHandler.WithinRadius)
		bootcamps.GET("/:id/courses", r.courseHandler.ListByBootcamp)

		// Writes require a publisher or admin account
		protected := bootcamps.Group("")
		protected.Use(r.jwtMw.RequireAuth(), r.jwtMw.RequireRole("publisher", "admin"))
		{
			protected.POST("", r.bootcampHandler.Create)
			protected.PUT("/:id", r.bootcampHandler.Update)
			protected.DELETE("/:id", r.bootcampHandler.Delete)
			protected.POST("/:id/photo", r.bootcampHandler.UploadPhoto)
			protected.POST("/:id/courses", r.courseHandler.Create)
		}
	}
}
