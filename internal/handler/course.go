package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq-id/bootcamp-api/internal/constants"
	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/service"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List serves all courses through the list pipeline.
func (h *CourseHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	query := c.Request.URL.Query()
	courses, meta, err := h.courseService.List(ctx, query)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to list courses").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	var payload any = courses
	if directives := listquery.ParseDirectives(query); len(directives.Select) > 0 {
		payload = listquery.Shape(courses, directives.Select)
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(len(courses), meta, payload))
}

// ListByBootcamp serves the courses nested under one bootcamp.
func (h *CourseHandler) ListByBootcamp(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "ListByBootcamp")

	bootcampID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	courses, err := h.courseService.ListByBootcamp(ctx, bootcampID)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to list bootcamp courses").
			Uint("bootcamp_id", bootcampID).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildCountResponse(len(courses), courses))
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "GetByID")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	course, err := h.courseService.GetByID(ctx, id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to fetch course").
			Uint("course_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildEntityResponse(course))
}

func (h *CourseHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	bootcampID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid course payload").
			Uint("bootcamp_id", bootcampID).
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(err.Error()))
		return
	}

	course, err := h.courseService.Create(ctx, bootcampID, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to create course").
			Uint("bootcamp_id", bootcampID).
			String("title", req.Title).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(course))
}

func (h *CourseHandler) Delete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Delete")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(ctx, id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to delete course").
			Uint("course_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	logger.InfoWithContext(ctx, "Course deleted").
		Uint("course_id", id).
		Log()

	c.JSON(http.StatusOK, constants.BuildDataResponse(gin.H{}))
}
