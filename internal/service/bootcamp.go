package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/config"
	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/filestore"
	"github.com/campushq-id/bootcamp-api/pkg/geocoder"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type BootcampService struct {
	bootcamps BootcampStore
	geo       geocoder.Geocoder
	files     filestore.Store
	upload    config.UploadConfig
}

func NewBootcampService(bootcamps BootcampStore, geo geocoder.Geocoder, files filestore.Store, upload config.UploadConfig) *BootcampService {
	return &BootcampService{
		bootcamps: bootcamps,
		geo:       geo,
		files:     files,
		upload:    upload,
	}
}

// List runs the list pipeline over the raw query parameters.
func (s *BootcampService) List(ctx context.Context, values url.Values) ([]dto.BootcampResponse, listquery.Meta, error) {
	ctx = ctxutil.WithScope(ctx, "service", "List")

	bootcamps, meta, err := s.bootcamps.List(ctx, values)
	if err != nil {
		return nil, listquery.Meta{}, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	responses := make([]dto.BootcampResponse, 0, len(bootcamps))
	for i := range bootcamps {
		responses = append(responses, toBootcampResponse(&bootcamps[i]))
	}
	return responses, meta, nil
}

func (s *BootcampService) GetByID(ctx context.Context, id uint) (*dto.BootcampResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	bootcamp, err := s.bootcamps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	response := toBootcampResponse(bootcamp)
	return &response, nil
}

// Create geocodes the address zipcode and stores the bootcamp with a slug
// derived from its name.
func (s *BootcampService) Create(ctx context.Context, req *dto.CreateBootcampRequest) (*dto.BootcampResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	location, err := s.geo.Geocode(ctx, req.Zipcode)
	if err != nil {
		if errors.Is(err, geocoder.ErrNoResult) {
			return nil, apperrors.ErrInvalidZipcode
		}
		logger.ErrorWithContext(ctx, "Geocoding failed").
			String("zipcode", req.Zipcode).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	careers, err := json.Marshal(req.Careers)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	bootcamp := &model.Bootcamp{
		Name:          strings.TrimSpace(req.Name),
		Slug:          Slugify(req.Name),
		Description:   req.Description,
		Website:       req.Website,
		Phone:         req.Phone,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Address:       req.Address,
		Zipcode:       req.Zipcode,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		Careers:       datatypes.JSON(careers),
		AverageCost:   req.AverageCost,
		Housing:       req.Housing,
		JobAssistance: req.JobAssistance,
		JobGuarantee:  req.JobGuarantee,
		AcceptGI:      req.AcceptGI,
	}
	if err := s.bootcamps.Create(ctx, bootcamp); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	response := toBootcampResponse(bootcamp)
	return &response, nil
}

func (s *BootcampService) Update(ctx context.Context, id uint, req *dto.UpdateBootcampRequest) (*dto.BootcampResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Update")

	if _, err := s.bootcamps.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
		updates["slug"] = Slugify(req.Name)
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Website != "" {
		updates["website"] = req.Website
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Email != "" {
		updates["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if len(req.Careers) > 0 {
		careers, err := json.Marshal(req.Careers)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		updates["careers"] = datatypes.JSON(careers)
	}
	if req.AverageCost != nil {
		updates["average_cost"] = *req.AverageCost
	}
	if req.Housing != nil {
		updates["housing"] = *req.Housing
	}
	if req.JobAssistance != nil {
		updates["job_assistance"] = *req.JobAssistance
	}
	if req.JobGuarantee != nil {
		updates["job_guarantee"] = *req.JobGuarantee
	}
	if req.AcceptGI != nil {
		updates["accept_gi"] = *req.AcceptGI
	}

	if len(updates) > 0 {
		if err := s.bootcamps.Update(ctx, id, updates); err != nil {
			return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
		}
	}

	updated, err := s.bootcamps.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}
	response := toBootcampResponse(updated)
	return &response, nil
}

// Delete removes the bootcamp; the store cascades to its courses.
func (s *BootcampService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	if err := s.bootcamps.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBootcampNotFound
		}
		return apperrors.WrapError(apperrors.ErrUpstream, err)
	}
	return nil
}

// WithinRadius geocodes the zipcode and returns bootcamps inside the given
// distance in miles.
func (s *BootcampService) WithinRadius(ctx context.Context, zipcode, distance string) ([]dto.BootcampResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "WithinRadius")

	miles, err := strconv.ParseFloat(distance, 64)
	if err != nil || miles <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	location, err := s.geo.Geocode(ctx, zipcode)
	if err != nil {
		if errors.Is(err, geocoder.ErrNoResult) {
			return nil, apperrors.ErrInvalidZipcode
		}
		logger.ErrorWithContext(ctx, "Geocoding failed").
			String("zipcode", zipcode).
			Err(err).
			Log()
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	bootcamps, err := s.bootcamps.WithinRadius(ctx, location.Latitude, location.Longitude, miles)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	responses := make([]dto.BootcampResponse, 0, len(bootcamps))
	for i := range bootcamps {
		responses = append(responses, toBootcampResponse(&bootcamps[i]))
	}
	return responses, nil
}

// UploadPhoto validates the upload before any file or database write: it must
// be an image and fit the configured size cap. The stored name is
// Photo_<id><ext>.
func (s *BootcampService) UploadPhoto(ctx context.Context, id uint, upload *dto.PhotoUpload) (string, error) {
	ctx = ctxutil.WithScope(ctx, "service", "UploadPhoto")

	if _, err := s.bootcamps.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrBootcampNotFound
		}
		return "", apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	if !strings.HasPrefix(upload.ContentType, "image/") {
		logger.WarnWithContext(ctx, "Photo upload rejected, not an image").
			Uint("bootcamp_id", id).
			String("content_type", upload.ContentType).
			Log()
		return "", apperrors.ErrInvalidUpload
	}
	if upload.Size <= 0 || upload.Size > s.upload.MaxBytes {
		logger.WarnWithContext(ctx, "Photo upload rejected, size out of bounds").
			Uint("bootcamp_id", id).
			Int64("size", upload.Size).
			Int64("max_bytes", s.upload.MaxBytes).
			Log()
		return "", apperrors.ErrInvalidUpload
	}

	filename := fmt.Sprintf("Photo_%d%s", id, filepath.Ext(upload.Filename))

	content, err := upload.Content.Open()
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrInternal, err)
	}
	defer content.Close()

	if err := s.files.Save(filename, content); err != nil {
		logger.ErrorWithContext(ctx, "Failed to store photo").
			Uint("bootcamp_id", id).
			String("photo", filename).
			Err(err).
			Log()
		return "", apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	if err := s.bootcamps.UpdatePhoto(ctx, id, filename); err != nil {
		return "", apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	logger.InfoWithContext(ctx, "Bootcamp photo uploaded").
		Uint("bootcamp_id", id).
		String("photo", filename).
		Log()
	return filename, nil
}

// Slugify lowercases a name and collapses everything else into hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func toBootcampResponse(bootcamp *model.Bootcamp) dto.BootcampResponse {
	var careers []string
	if len(bootcamp.Careers) > 0 {
		_ = json.Unmarshal(bootcamp.Careers, &careers)
	}

	courses := make([]dto.CourseResponse, 0, len(bootcamp.Courses))
	for i := range bootcamp.Courses {
		courses = append(courses, toCourseResponse(&bootcamp.Courses[i]))
	}

	return dto.BootcampResponse{
		ID:            bootcamp.ID,
		Name:          bootcamp.Name,
		Slug:          bootcamp.Slug,
		Description:   bootcamp.Description,
		Website:       bootcamp.Website,
		Phone:         bootcamp.Phone,
		Email:         bootcamp.Email,
		Address:       bootcamp.Address,
		Zipcode:       bootcamp.Zipcode,
		Latitude:      bootcamp.Latitude,
		Longitude:     bootcamp.Longitude,
		Careers:       careers,
		AverageCost:   bootcamp.AverageCost,
		Housing:       bootcamp.Housing,
		JobAssistance: bootcamp.JobAssistance,
		JobGuarantee:  bootcamp.JobGuarantee,
		AcceptGI:      bootcamp.AcceptGI,
		Photo:         bootcamp.Photo,
		Courses:       courses,
		CreatedAt:     bootcamp.CreatedAt,
		UpdatedAt:     bootcamp.UpdatedAt,
	}
}
