package service

import (
	"context"
	"net/url"

	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
)

// Storage collaborators, defined where they are consumed. The gorm
// repositories implement them; tests substitute in-memory fakes.

type BootcampStore interface {
	List(ctx context.Context, values url.Values) ([]model.Bootcamp, listquery.Meta, error)
	GetByID(ctx context.Context, id uint) (*model.Bootcamp, error)
	Create(ctx context.Context, bootcamp *model.Bootcamp) error
	Update(ctx context.Context, id uint, updates map[string]any) error
	Delete(ctx context.Context, id uint) error
	WithinRadius(ctx context.Context, lat, lng, miles float64) ([]model.Bootcamp, error)
	UpdatePhoto(ctx context.Context, id uint, filename string) error
}

type CourseStore interface {
	List(ctx context.Context, values url.Values) ([]model.Course, listquery.Meta, error)
	ListByBootcamp(ctx context.Context, bootcampID uint) ([]model.Course, error)
	GetByID(ctx context.Context, id uint) (*model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uint) error
	CountByBootcamp(ctx context.Context, bootcampID uint) (int64, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}
