package repository

import (
	"context"
	"net/url"

	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List reuses the same pipeline the bootcamp listing goes through.
func (r *CourseRepository) List(ctx context.Context, values url.Values) ([]model.Course, listquery.Meta, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	directives := listquery.ParseDirectives(values)
	conditions := listquery.Translate(values, listquery.ReservedKeys()...)

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Scopes(listquery.Where(conditions)).
		Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count courses").
			Err(err).
			Log()
		return nil, listquery.Meta{}, err
	}

	meta := listquery.Paginate(directives.Page, directives.Limit, total)

	var courses []model.Course
	if err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Scopes(listquery.Where(conditions), listquery.Apply(directives)).
		Find(&courses).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch courses").
			Int("page", directives.Page).
			Int("limit", directives.Limit).
			Err(err).
			Log()
		return nil, listquery.Meta{}, err
	}

	return courses, meta, nil
}

func (r *CourseRepository) ListByBootcamp(ctx context.Context, bootcampID uint) ([]model.Course, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "ListByBootcamp")

	var courses []model.Course
	err := r.db.WithContext(ctx).
		Where("bootcamp_id = ?", bootcampID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch bootcamp courses").
			Uint("bootcamp_id", bootcampID).
			Err(err).
			Log()
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var course model.Course
	result := r.db.WithContext(ctx).First(&course, id)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get course").
				Uint("course_id", id).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}
	return &course, nil
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create course").
			Uint("bootcamp_id", course.BootcampID).
			String("title", course.Title).
			Err(err).
			Log()
		return err
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Course{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete course").
			Uint("course_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CourseRepository) CountByBootcamp(ctx context.Context, bootcampID uint) (int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "CountByBootcamp")

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Course{}).
		Where("bootcamp_id = ?", bootcampID).
		Count(&count).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to count bootcamp courses").
			Uint("bootcamp_id", bootcampID).
			Err(err).
			Log()
		return 0, err
	}
	return count, nil
}
