package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
)

type fakeCourseStore struct {
	courses map[uint]*model.Course
	nextID  uint
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: map[uint]*model.Course{}, nextID: 1}
}

func (f *fakeCourseStore) List(ctx context.Context, values url.Values) ([]model.Course, listquery.Meta, error) {
	out := make([]model.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, *c)
	}
	return out, listquery.Meta{}, nil
}

func (f *fakeCourseStore) ListByBootcamp(ctx context.Context, bootcampID uint) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range f.courses {
		if c.BootcampID == bootcampID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id uint) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCourseStore) Create(ctx context.Context, course *model.Course) error {
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseStore) CountByBootcamp(ctx context.Context, bootcampID uint) (int64, error) {
	var n int64
	for _, c := range f.courses {
		if c.BootcampID == bootcampID {
			n++
		}
	}
	return n, nil
}

func TestCourseService_Create(t *testing.T) {
	bootcamps := newFakeBootcampStore()
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, bootcamps)
	bootcamp := seedBootcamp(t, bootcamps)

	resp, err := svc.Create(context.Background(), bootcamp.ID, &dto.CreateCourseRequest{
		Title:        "Front End Web Development",
		Description:  "HTML, CSS, JavaScript",
		Weeks:        8,
		Tuition:      8000,
		MinimumSkill: "beginner",
	})
	require.NoError(t, err)
	assert.Equal(t, bootcamp.ID, resp.BootcampID)
	assert.Equal(t, "Front End Web Development", resp.Title)
}

func TestCourseService_CreateUnknownBootcamp(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), newFakeBootcampStore())

	_, err := svc.Create(context.Background(), 42, &dto.CreateCourseRequest{
		Title:        "Front End Web Development",
		Description:  "HTML, CSS, JavaScript",
		Weeks:        8,
		Tuition:      8000,
		MinimumSkill: "beginner",
	})
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
}

func TestCourseService_ListByBootcamp(t *testing.T) {
	bootcamps := newFakeBootcampStore()
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, bootcamps)
	bootcamp := seedBootcamp(t, bootcamps)

	require.NoError(t, courses.Create(context.Background(), &model.Course{
		BootcampID: bootcamp.ID,
		Title:      "Front End Web Development",
	}))
	require.NoError(t, courses.Create(context.Background(), &model.Course{
		BootcampID: bootcamp.ID + 100,
		Title:      "Unrelated",
	}))

	resp, err := svc.ListByBootcamp(context.Background(), bootcamp.ID)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Front End Web Development", resp[0].Title)
}

func TestCourseService_ListByBootcampNotFound(t *testing.T) {
	svc := NewCourseService(newFakeCourseStore(), newFakeBootcampStore())

	_, err := svc.ListByBootcamp(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
}

func TestCourseService_Delete(t *testing.T) {
	courses := newFakeCourseStore()
	svc := NewCourseService(courses, newFakeBootcampStore())

	require.NoError(t, courses.Create(context.Background(), &model.Course{Title: "Front End Web Development"}))
	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), apperrors.ErrCourseNotFound)
}
