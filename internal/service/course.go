package service

import (
	"context"
	"errors"
	"net/url"

	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type CourseService struct {
	courses   CourseStore
	bootcamps BootcampStore
}

func NewCourseService(courses CourseStore, bootcamps BootcampStore) *CourseService {
	return &CourseService{
		courses:   courses,
		bootcamps: bootcamps,
	}
}

// List runs the list pipeline over all courses.
func (s *CourseService) List(ctx context.Context, values url.Values) ([]dto.CourseResponse, listquery.Meta, error) {
	ctx = ctxutil.WithScope(ctx, "service", "List")

	courses, meta, err := s.courses.List(ctx, values)
	if err != nil {
		return nil, listquery.Meta{}, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, toCourseResponse(&courses[i]))
	}
	return responses, meta, nil
}

// ListByBootcamp returns the courses of one bootcamp. A missing bootcamp is
// reported as not found rather than an empty list.
func (s *CourseService) ListByBootcamp(ctx context.Context, bootcampID uint) ([]dto.CourseResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "ListByBootcamp")

	if _, err := s.bootcamps.GetByID(ctx, bootcampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	courses, err := s.courses.ListByBootcamp(ctx, bootcampID)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, toCourseResponse(&courses[i]))
	}
	return responses, nil
}

func (s *CourseService) GetByID(ctx context.Context, id uint) (*dto.CourseResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	response := toCourseResponse(course)
	return &response, nil
}

// Create adds a course under an existing bootcamp.
func (s *CourseService) Create(ctx context.Context, bootcampID uint, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	if _, err := s.bootcamps.GetByID(ctx, bootcampID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBootcampNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	course := &model.Course{
		BootcampID:           bootcampID,
		Title:                req.Title,
		Description:          req.Description,
		Weeks:                req.Weeks,
		Tuition:              req.Tuition,
		MinimumSkill:         req.MinimumSkill,
		ScholarshipAvailable: req.ScholarshipAvailable,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrUpstream, err)
	}

	logger.InfoWithContext(ctx, "Course created").
		Uint("course_id", course.ID).
		Uint("bootcamp_id", bootcampID).
		Log()

	response := toCourseResponse(course)
	return &response, nil
}

func (s *CourseService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return apperrors.WrapError(apperrors.ErrUpstream, err)
	}
	return nil
}

func toCourseResponse(course *model.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:                   course.ID,
		BootcampID:           course.BootcampID,
		Title:                course.Title,
		Description:          course.Description,
		Weeks:                course.Weeks,
		Tuition:              course.Tuition,
		MinimumSkill:         course.MinimumSkill,
		ScholarshipAvailable: course.ScholarshipAvailable,
		CreatedAt:            course.CreatedAt,
		UpdatedAt:            course.UpdatedAt,
	}
}
