package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"studio/config"
	otelMocks "studio/infras/otel/mocks"
	"studio/infras/s3"
	s3Mocks "studio/infras/s3/mocks"
	galleryMocks "studio/internal/domains/gallery/mocks"
	"studio/internal/domains/gallery/model"
	"studio/internal/domains/gallery/model/dto"
	"studio/internal/domains/gallery/service"
	"studio/shared/cache"
	cacheMocks "studio/shared/cache/mocks"
	"studio/shared/constant"
	gDto "studio/shared/dto"
	"studio/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

type fixture struct {
	repo  *galleryMocks.MockGallery
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Gallery
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.External.S3.UploadTimeoutSeconds = 5

	f := fixture{
		repo:  galleryMocks.NewMockGallery(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel(), f.s3)

	return f
}

func uploadRequest(contentType string) dto.UploadImageRequest {
	return dto.UploadImageRequest{
		Image: &multipart.FileHeader{
			Filename: "haldi.png",
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
			Size:     4,
		},
		ImageFile: memFile{bytes.NewReader([]byte("png!"))},
		Caption:   " Haldi ",
	}
}

func TestGalleryService_Upload(t *testing.T) {
	f := newFixture(t)

	invalidated := make(chan struct{})

	f.s3.EXPECT().
		UploadFile(gomock.Any(), model.Directory, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, directory string, _ multipart.File, _ *multipart.FileHeader, fileName string) (*s3.Object, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.True(t, strings.HasSuffix(fileName, ".png"))

			key := directory + "/" + fileName

			return &s3.Object{Key: key, URL: "https://cdn.example.com/" + key}, nil
		})

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.Entry) (int64, error) {
			assert.Equal(t, "Haldi", entry.Caption)
			assert.True(t, strings.HasPrefix(entry.PublicID, "gallery/"))

			return 9, nil
		})

	f.cache.EXPECT().
		Delete(gomock.Any(), constant.CacheKeyGalleryList).
		DoAndReturn(func(context.Context, string) error {
			close(invalidated)

			return nil
		})

	res, err := f.svc.Upload(context.Background(), uploadRequest("image/png"))
	require.NoError(t, err)

	assert.True(t, res.OK)
	assert.True(t, strings.HasPrefix(res.URL, "https://cdn.example.com/gallery/"))
	assert.True(t, strings.HasPrefix(res.PublicID, "gallery/"))

	select {
	case <-invalidated:
	case <-time.After(2 * time.Second):
		t.Fatal("gallery cache was not invalidated")
	}
}

func TestGalleryService_UploadRejectsNonImage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Upload(context.Background(), uploadRequest("application/pdf"))
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestGalleryService_UploadHostFailure(t *testing.T) {
	f := newFixture(t)

	f.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("host unreachable"))

	_, err := f.svc.Upload(context.Background(), uploadRequest("image/jpeg"))
	require.Error(t, err)
	assert.Equal(t, failure.KindUpload, failure.GetKind(err))
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestGalleryService_UploadStorageFailureRemovesObject(t *testing.T) {
	f := newFixture(t)

	f.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&s3.Object{Key: "gallery/x.png", URL: "u"}, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("disk full"))
	f.s3.EXPECT().DeleteFile(gomock.Any(), "gallery/x.png").Return(nil)

	_, err := f.svc.Upload(context.Background(), uploadRequest("image/webp"))
	assert.Equal(t, failure.KindStorage, failure.GetKind(err))
}

func TestGalleryService_List(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyGalleryList, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]dto.GalleryItem)) = []dto.GalleryItem{{URL: "cached"}}

				return nil
			})

		items, err := f.svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []dto.GalleryItem{{URL: "cached"}}, items)
	})

	t.Run("cache miss reads newest twenty", func(t *testing.T) {
		f := newFixture(t)
		saved := make(chan []dto.GalleryItem, 1)

		f.cache.EXPECT().
			Get(gomock.Any(), constant.CacheKeyGalleryList, gomock.Any()).
			Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gDto.Newest(model.FieldID, 20), gomock.Any(), model.FieldImageURL, model.FieldCaption).
			Return([]model.Entry{{ImageURL: "u2", Caption: "second"}, {ImageURL: "u1"}}, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), constant.CacheKeyGalleryList, gomock.Any(), 300).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				saved <- value.([]dto.GalleryItem)

				return nil
			})

		items, err := f.svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []dto.GalleryItem{{URL: "u2", Caption: "second"}, {URL: "u1"}}, items)

		select {
		case cached := <-saved:
			assert.Equal(t, items, cached)
		case <-time.After(2 * time.Second):
			t.Fatal("gallery list was not cached")
		}
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no such table: gallery"))

		_, err := f.svc.List(context.Background())
		assert.Equal(t, failure.KindStorage, failure.GetKind(err))
	})
}

func TestGalleryService_Delete(t *testing.T) {
	filter := gDto.Eq(model.FieldPublicID, "gallery/a.png")

	t.Run("removes object, record and cache", func(t *testing.T) {
		f := newFixture(t)
		invalidated := make(chan struct{})

		gomock.InOrder(
			f.repo.EXPECT().
				Get(gomock.Any(), filter, model.FieldID, model.FieldPublicID).
				Return(model.Entry{ID: 3, PublicID: "gallery/a.png"}, true, nil),
			f.s3.EXPECT().DeleteFile(gomock.Any(), "gallery/a.png").Return(nil),
			f.repo.EXPECT().Delete(gomock.Any(), filter).Return(int64(1), nil),
		)
		f.cache.EXPECT().
			Delete(gomock.Any(), constant.CacheKeyGalleryList).
			DoAndReturn(func(context.Context, string) error {
				close(invalidated)

				return nil
			})

		require.NoError(t, f.svc.Delete(context.Background(), "gallery/a.png"))

		select {
		case <-invalidated:
		case <-time.After(2 * time.Second):
			t.Fatal("gallery cache was not invalidated")
		}
	})

	t.Run("unknown image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), filter, gomock.Any(), gomock.Any()).
			Return(model.Entry{}, false, nil)

		err := f.svc.Delete(context.Background(), "gallery/a.png")
		assert.Equal(t, 404, failure.GetCode(err))
		assert.Equal(t, "Image not found", failure.GetMessage(err))
	})

	t.Run("host failure keeps the record", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), filter, gomock.Any(), gomock.Any()).
			Return(model.Entry{ID: 3}, true, nil)
		f.s3.EXPECT().DeleteFile(gomock.Any(), "gallery/a.png").Return(errors.New("AccessDenied"))

		err := f.svc.Delete(context.Background(), "gallery/a.png")
		assert.Equal(t, failure.KindUpload, failure.GetKind(err))
	})
}
