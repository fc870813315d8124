package service

import (
	"context"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campushq-id/bootcamp-api/config"
	"github.com/campushq-id/bootcamp-api/internal/dto"
	apperrors "github.com/campushq-id/bootcamp-api/internal/errors"
	"github.com/campushq-id/bootcamp-api/internal/model"
	"github.com/campushq-id/bootcamp-api/pkg/geocoder"
	"github.com/campushq-id/bootcamp-api/pkg/listquery"
)

type fakeBootcampStore struct {
	bootcamps map[uint]*model.Bootcamp
	nextID    uint
	photos    map[uint]string
	listMeta  listquery.Meta
}

func newFakeBootcampStore() *fakeBootcampStore {
	return &fakeBootcampStore{
		bootcamps: map[uint]*model.Bootcamp{},
		nextID:    1,
		photos:    map[uint]string{},
	}
}

func (f *fakeBootcampStore) List(ctx context.Context, values url.Values) ([]model.Bootcamp, listquery.Meta, error) {
	out := make([]model.Bootcamp, 0, len(f.bootcamps))
	for _, b := range f.bootcamps {
		out = append(out, *b)
	}
	return out, f.listMeta, nil
}

func (f *fakeBootcampStore) GetByID(ctx context.Context, id uint) (*model.Bootcamp, error) {
	b, ok := f.bootcamps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (f *fakeBootcampStore) Create(ctx context.Context, bootcamp *model.Bootcamp) error {
	bootcamp.ID = f.nextID
	f.nextID++
	f.bootcamps[bootcamp.ID] = bootcamp
	return nil
}

func (f *fakeBootcampStore) Update(ctx context.Context, id uint, updates map[string]any) error {
	if _, ok := f.bootcamps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		f.bootcamps[id].Name = name
	}
	if slug, ok := updates["slug"].(string); ok {
		f.bootcamps[id].Slug = slug
	}
	return nil
}

func (f *fakeBootcampStore) Delete(ctx context.Context, id uint) error {
	if _, ok := f.bootcamps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.bootcamps, id)
	return nil
}

func (f *fakeBootcampStore) WithinRadius(ctx context.Context, lat, lng, miles float64) ([]model.Bootcamp, error) {
	out := make([]model.Bootcamp, 0, len(f.bootcamps))
	for _, b := range f.bootcamps {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBootcampStore) UpdatePhoto(ctx context.Context, id uint, filename string) error {
	if _, ok := f.bootcamps[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.photos[id] = filename
	return nil
}

type fakeGeocoder struct {
	location geocoder.Location
	err      error
	calls    int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, zipcode string) (geocoder.Location, error) {
	f.calls++
	if f.err != nil {
		return geocoder.Location{}, f.err
	}
	return f.location, nil
}

type fakeFileStore struct {
	saved map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: map[string][]byte{}}
}

func (f *fakeFileStore) Save(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.saved[name] = data
	return nil
}

func newBootcampService(store *fakeBootcampStore, geo *fakeGeocoder, files *fakeFileStore) *BootcampService {
	return NewBootcampService(store, geo, files, config.UploadConfig{MaxBytes: 1000000, Dir: "/tmp"})
}

func seedBootcamp(t *testing.T, store *fakeBootcampStore) *model.Bootcamp {
	t.Helper()
	bootcamp := &model.Bootcamp{
		Name:    "Devworks Bootcamp",
		Slug:    "devworks-bootcamp",
		Zipcode: "02118",
		Careers: datatypes.JSON(`["Web Development","UI/UX"]`),
	}
	require.NoError(t, store.Create(context.Background(), bootcamp))
	return bootcamp
}

func TestBootcampService_Create(t *testing.T) {
	store := newFakeBootcampStore()
	geo := &fakeGeocoder{location: geocoder.Location{Latitude: 42.34, Longitude: -71.07}}
	svc := newBootcampService(store, geo, newFakeFileStore())

	resp, err := svc.Create(context.Background(), &dto.CreateBootcampRequest{
		Name:        "Devworks Bootcamp",
		Description: "Full stack web development",
		Address:     "233 Bay State Rd",
		Zipcode:     "02118",
		Careers:     []string{"Web Development", "UI/UX"},
	})
	require.NoError(t, err)

	assert.Equal(t, "devworks-bootcamp", resp.Slug)
	assert.Equal(t, 42.34, resp.Latitude)
	assert.Equal(t, -71.07, resp.Longitude)
	assert.Equal(t, []string{"Web Development", "UI/UX"}, resp.Careers)
	assert.Equal(t, 1, geo.calls)
}

func TestBootcampService_CreateUnknownZipcode(t *testing.T) {
	store := newFakeBootcampStore()
	geo := &fakeGeocoder{err: geocoder.ErrNoResult}
	svc := newBootcampService(store, geo, newFakeFileStore())

	_, err := svc.Create(context.Background(), &dto.CreateBootcampRequest{
		Name:    "Nowhere Bootcamp",
		Zipcode: "00000",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidZipcode)
	assert.Empty(t, store.bootcamps)
}

func TestBootcampService_GetByIDNotFound(t *testing.T) {
	svc := newBootcampService(newFakeBootcampStore(), &fakeGeocoder{}, newFakeFileStore())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
}

func TestBootcampService_Update(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampService(store, &fakeGeocoder{}, newFakeFileStore())
	bootcamp := seedBootcamp(t, store)

	resp, err := svc.Update(context.Background(), bootcamp.ID, &dto.UpdateBootcampRequest{
		Name: "ModernTech Bootcamp",
	})
	require.NoError(t, err)
	assert.Equal(t, "ModernTech Bootcamp", resp.Name)
	assert.Equal(t, "moderntech-bootcamp", resp.Slug)
}

func TestBootcampService_Delete(t *testing.T) {
	store := newFakeBootcampStore()
	svc := newBootcampService(store, &fakeGeocoder{}, newFakeFileStore())
	bootcamp := seedBootcamp(t, store)

	require.NoError(t, svc.Delete(context.Background(), bootcamp.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), bootcamp.ID), apperrors.ErrBootcampNotFound)
}

func TestBootcampService_WithinRadius(t *testing.T) {
	store := newFakeBootcampStore()
	geo := &fakeGeocoder{location: geocoder.Location{Latitude: 42.34, Longitude: -71.07}}
	svc := newBootcampService(store, geo, newFakeFileStore())
	seedBootcamp(t, store)

	resp, err := svc.WithinRadius(context.Background(), "02118", "10")
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestBootcampService_WithinRadiusBadDistance(t *testing.T) {
	svc := newBootcampService(newFakeBootcampStore(), &fakeGeocoder{}, newFakeFileStore())

	for _, distance := range []string{"abc", "-5", "0"} {
		_, err := svc.WithinRadius(context.Background(), "02118", distance)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "distance %q", distance)
	}
}

func TestBootcampService_UploadPhoto(t *testing.T) {
	store := newFakeBootcampStore()
	files := newFakeFileStore()
	svc := newBootcampService(store, &fakeGeocoder{}, files)
	bootcamp := seedBootcamp(t, store)

	filename, err := svc.UploadPhoto(context.Background(), bootcamp.ID, &dto.PhotoUpload{
		Filename:    "campus.jpg",
		Size:        512,
		ContentType: "image/jpeg",
		Content: dto.OpenerFunc(func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("jpeg bytes")), nil
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "Photo_1.jpg", filename)
	assert.Equal(t, []byte("jpeg bytes"), files.saved[filename])
	assert.Equal(t, filename, store.photos[bootcamp.ID])
}

func TestBootcampService_UploadPhotoRejectsBeforeSaving(t *testing.T) {
	tests := []struct {
		name   string
		upload dto.PhotoUpload
	}{
		{
			name: "not an image",
			upload: dto.PhotoUpload{
				Filename:    "resume.pdf",
				Size:        512,
				ContentType: "application/pdf",
			},
		},
		{
			name: "too large",
			upload: dto.PhotoUpload{
				Filename:    "campus.jpg",
				Size:        2000000,
				ContentType: "image/jpeg",
			},
		},
		{
			name: "empty",
			upload: dto.PhotoUpload{
				Filename:    "campus.jpg",
				Size:        0,
				ContentType: "image/jpeg",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeBootcampStore()
			files := newFakeFileStore()
			svc := newBootcampService(store, &fakeGeocoder{}, files)
			bootcamp := seedBootcamp(t, store)

			_, err := svc.UploadPhoto(context.Background(), bootcamp.ID, &tt.upload)
			assert.ErrorIs(t, err, apperrors.ErrInvalidUpload)
			assert.Empty(t, files.saved)
			assert.Empty(t, store.photos)
		})
	}
}

func TestBootcampService_UploadPhotoUnknownBootcamp(t *testing.T) {
	files := newFakeFileStore()
	svc := newBootcampService(newFakeBootcampStore(), &fakeGeocoder{}, files)

	_, err := svc.UploadPhoto(context.Background(), 42, &dto.PhotoUpload{
		Filename:    "campus.jpg",
		Size:        512,
		ContentType: "image/jpeg",
	})
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
	assert.Empty(t, files.saved)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Devworks Bootcamp", "devworks-bootcamp"},
		{"  ModernTech  Bootcamp  ", "moderntech-bootcamp"},
		{"Dev & Ops: 101", "dev-ops-101"},
		{"already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
