package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushq-id/bootcamp-api/internal/constants"
	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/service"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type BootcampHandler struct {
	bootcampService *service.BootcampService
}

func NewBootcampHandler(bootcampService *service.BootcampService) *BootcampHandler {
	return &BootcampHandler{bootcampService: bootcampService}
}

// parseIDParam reads a numeric path parameter, rejecting anything that does
// not fit a uint.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// List serves the filtered, shaped, paginated bootcamp collection. Every
// query parameter flows into the list pipeline untouched.
func (h *BootcampHandler) List(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "List")

	query := c.Request.URL.Query()
	bootcamps, meta, err := h.bootcampService.List(ctx, query)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to list bootcamps").
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	var payload any = bootcamps
	if directives := listquery.ParseDirectives(query); len(directives.Select) > 0 {
		payload = listquery.Shape(bootcamps, directives.Select)
	}

	c.JSON(http.StatusOK, constants.BuildListResponse(len(bootcamps), meta, payload))
}

func (h *BootcampHandler) GetByID(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "GetByID")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	bootcamp, err := h.bootcampService.GetByID(ctx, id)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Failed to fetch bootcamp").
			Uint("bootcamp_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildEntityResponse(bootcamp))
}

func (h *BootcampHandler) Create(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Create")

	var req dto.CreateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid bootcamp payload").
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(err.Error()))
		return
	}

	bootcamp, err := h.bootcampService.Create(ctx, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to create bootcamp").
			String("name", req.Name).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	logger.InfoWithContext(ctx, "Bootcamp created").
		Uint("bootcamp_id", bootcamp.ID).
		String("slug", bootcamp.Slug).
		Log()

	c.JSON(http.StatusCreated, constants.BuildDataResponse(bootcamp))
}

func (h *BootcampHandler) Update(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Update")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBootcampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnWithContext(ctx, "Invalid bootcamp payload").
			Uint("bootcamp_id", id).
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse(err.Error()))
		return
	}

	bootcamp, err := h.bootcampService.Update(ctx, id, &req)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to update bootcamp").
			Uint("bootcamp_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(bootcamp))
}

func (h *BootcampHandler) Delete(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "Delete")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bootcampService.Delete(ctx, id); err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.ErrorWithContext(ctx, "Failed to delete bootcamp").
			Uint("bootcamp_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	logger.InfoWithContext(ctx, "Bootcamp deleted").
		Uint("bootcamp_id", id).
		Log()

	c.JSON(http.StatusOK, constants.BuildDataResponse(gin.H{}))
}

// WithinRadius serves bootcamps within a distance in miles of a zipcode.
func (h *BootcampHandler) WithinRadius(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "WithinRadius")

	zipcode := c.Param("zipcode")
	distance := c.Param("distance")

	bootcamps, err := h.bootcampService.WithinRadius(ctx, zipcode, distance)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Radius search failed").
			String("zipcode", zipcode).
			String("distance", distance).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildCountResponse(len(bootcamps), bootcamps))
}

// UploadPhoto accepts a multipart file under the "file" field and hands it to
// the service for validation and storage.
func (h *BootcampHandler) UploadPhoto(c *gin.Context) {
	ctx := ctxutil.WithScope(c.Request.Context(), "handler", "UploadPhoto")

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.WarnWithContext(ctx, "Photo upload missing file field").
			Uint("bootcamp_id", id).
			Err(err).
			Log()
		c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("please upload a file"))
		return
	}

	upload := &dto.PhotoUpload{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content: dto.OpenerFunc(func() (io.ReadCloser, error) {
			return fileHeader.Open()
		}),
	}

	filename, err := h.bootcampService.UploadPhoto(ctx, id, upload)
	if err != nil {
		status := apperrors.ToHTTPStatus(err)
		logger.WarnWithContext(ctx, "Photo upload rejected").
			Uint("bootcamp_id", id).
			Int("http_status", status).
			Err(err).
			Log()
		c.JSON(status, constants.BuildErrorResponse(apperrors.GetErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(filename))
}
