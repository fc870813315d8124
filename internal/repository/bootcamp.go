package repository

import (
	"context"
	"net/url"
	"time"

	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/ctxutil"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
	"github.com/campushq-id/bootcamp-api/pkg/logger"
)

// earthRadiusMiles feeds the haversine distance used by radius search.
const earthRadiusMiles = 3963.0

const haversineClause = "(? * acos(cos(radians(?)) * cos(radians(latitude)) * " +
	"cos(radians(longitude) - radians(?)) + sin(radians(?)) * sin(radians(latitude)))) <= ?"

type BootcampRepository struct {
	db *gorm.DB
}

func NewBootcampRepository(db *gorm.DB) *BootcampRepository {
	return &BootcampRepository{db: db}
}

// List runs the full list pipeline: translate filters, count the filtered
// set, then fetch one shaped page with courses expanded. The two storage
// calls are sequential on purpose; no snapshot guarantee is assumed.
func (r *BootcampRepository) List(ctx context.Context, values url.Values) ([]model.Bootcamp, listquery.Meta, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "List")

	directives := listquery.ParseDirectives(values)
	conditions := listquery.Translate(values, listquery.ReservedKeys()...)

	start := time.Now()
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.Bootcamp{}).
		Scopes(listquery.Where(conditions, "careers")).
		Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count bootcamps").
			Err(err).
			Log()
		return nil, listquery.Meta{}, err
	}

	meta := listquery.Paginate(directives.Page, directives.Limit, total)

	var bootcamps []model.Bootcamp
	if err := r.db.WithContext(ctx).
		Model(&model.Bootcamp{}).
		Scopes(listquery.Where(conditions, "careers"), listquery.Apply(directives)).
		Preload("Courses").
		Find(&bootcamps).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch bootcamps").
			Int("page", directives.Page).
			Int("limit", directives.Limit).
			Err(err).
			Log()
		return nil, listquery.Meta{}, err
	}

	logger.DebugWithContext(ctx, "Bootcamps listed").
		Int("page", directives.Page).
		Int("limit", directives.Limit).
		Int64("total", total).
		Int("returned_count", len(bootcamps)).
		Duration(time.Since(start)).
		Log()

	return bootcamps, meta, nil
}

func (r *BootcampRepository) GetByID(ctx context.Context, id uint) (*model.Bootcamp, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var bootcamp model.Bootcamp
	result := r.db.WithContext(ctx).Preload("Courses").First(&bootcamp, id)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get bootcamp").
				Uint("bootcamp_id", id).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}
	return &bootcamp, nil
}

func (r *BootcampRepository) Create(ctx context.Context, bootcamp *model.Bootcamp) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(bootcamp).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create bootcamp").
			String("name", bootcamp.Name).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Bootcamp created").
		Uint("bootcamp_id", bootcamp.ID).
		String("slug", bootcamp.Slug).
		Log()
	return nil
}

func (r *BootcampRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Bootcamp{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update bootcamp").
			Uint("bootcamp_id", id).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a bootcamp and its courses in one transaction so no orphan
// course can survive a partial failure.
func (r *BootcampRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bootcamp_id = ?", id).Delete(&model.Course{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Bootcamp{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to delete bootcamp").
				Uint("bootcamp_id", id).
				Err(err).
				Log()
		}
		return err
	}

	logger.InfoWithContext(ctx, "Bootcamp deleted with courses").
		Uint("bootcamp_id", id).
		Log()
	return nil
}

// WithinRadius finds bootcamps within the given distance (miles) of a point.
func (r *BootcampRepository) WithinRadius(ctx context.Context, lat, lng, miles float64) ([]model.Bootcamp, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "WithinRadius")

	var bootcamps []model.Bootcamp
	err := r.db.WithContext(ctx).
		Where(haversineClause, earthRadiusMiles, lat, lng, lat, miles).
		Find(&bootcamps).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to search bootcamps by radius").
			Float64("latitude", lat).
			Float64("longitude", lng).
			Float64("miles", miles).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Radius search completed").
		Float64("miles", miles).
		Int("returned_count", len(bootcamps)).
		Log()
	return bootcamps, nil
}

func (r *BootcampRepository) UpdatePhoto(ctx context.Context, id uint, filename string) error {
	ctx = ctxutil.WithScope(ctx, "repository", "UpdatePhoto")

	result := r.db.WithContext(ctx).Model(&model.Bootcamp{}).Where("id = ?", id).Update("photo", filename)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to persist bootcamp photo").
			Uint("bootcamp_id", id).
			String("photo", filename).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
