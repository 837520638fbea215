package gallery_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	homeDto "studio/internal/domains/home/model/dto"
	"studio/shared/constant"
	"studio/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetHomeImages(t *testing.T) {
	f := newFixture(t)

	f.home.EXPECT().List(gomock.Any()).Return([]homeDto.ImageItem{
		{ID: 2, URL: "https://cdn.example.com/home/b.png", Order: 0},
		{ID: 1, URL: "https://cdn.example.com/home/a.png", Caption: "Couple", Order: 1},
	}, nil)

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/home-images", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t,
		`[{"id":2,"url":"https://cdn.example.com/home/b.png","caption":"","order":0},
		  {"id":1,"url":"https://cdn.example.com/home/a.png","caption":"Couple","order":1}]`,
		recorder.Body.String(),
	)
}

func TestAddHomeImage(t *testing.T) {
	f := newFixture(t)

	f.home.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req homeDto.AddImageRequest) (homeDto.AddImageResponse, error) {
			assert.Equal(t, "cover.png", req.Image.Filename)
			assert.Equal(t, "Cover", req.Caption)
			assert.Equal(t, 3, req.DisplayOrder)

			return homeDto.AddImageResponse{OK: true, ID: 5, URL: "u", PublicID: "home/x.png"}, nil
		})

	recorder := f.serve(imageRequest(t, "/api/home-images", "cover.png", map[string]string{
		constant.FormFieldCaption:      "Cover",
		constant.FormFieldDisplayOrder: "3",
	}))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"ok":true,"id":5,"url":"u","public_id":"home/x.png"}`, recorder.Body.String())
}

func TestAddHomeImage_InvalidOrder(t *testing.T) {
	f := newFixture(t)

	recorder := f.serve(imageRequest(t, "/api/home-images", "cover.png", map[string]string{
		constant.FormFieldDisplayOrder: "first",
	}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Invalid display order"}`, recorder.Body.String())
}

func TestAddHomeImage_RequiresSession(t *testing.T) {
	f := newFixture(t)

	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, imageRequest(t, "/api/home-images", "cover.png", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestDeactivateHomeImage(t *testing.T) {
	f := newFixture(t)

	f.home.EXPECT().Deactivate(gomock.Any(), int64(7)).Return(nil)

	recorder := f.serve(httptest.NewRequest(http.MethodDelete, "/api/home-images/7", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())
}

func TestDeactivateHomeImage_InvalidID(t *testing.T) {
	f := newFixture(t)

	recorder := f.serve(httptest.NewRequest(http.MethodDelete, "/api/home-images/abc", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Invalid image id"}`, recorder.Body.String())
}

func TestDeactivateHomeImage_NotFound(t *testing.T) {
	f := newFixture(t)

	f.home.EXPECT().Deactivate(gomock.Any(), int64(8)).Return(failure.NotFound(constant.ResponseErrorImageNotFound))

	recorder := f.serve(httptest.NewRequest(http.MethodDelete, "/api/home-images/8", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestReorderHomeImage(t *testing.T) {
	f := newFixture(t)

	f.home.EXPECT().
		Reorder(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req homeDto.ReorderRequest) error {
			assert.Equal(t, 4, *req.DisplayOrder)

			return nil
		})

	request := httptest.NewRequest(http.MethodPut, "/api/home-images/7/order", strings.NewReader(`{"display_order":4}`))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	recorder := f.serve(request)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestReorderHomeImage_Invalid(t *testing.T) {
	f := newFixture(t)

	request := httptest.NewRequest(http.MethodPut, "/api/home-images/7/order", strings.NewReader(`{"display_order":-2}`))

	recorder := f.serve(request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Invalid display order"}`, recorder.Body.String())
}

func TestReorderHomeImage_StorageErrorIsGeneric(t *testing.T) {
	f := newFixture(t)

	f.home.EXPECT().
		Reorder(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("failed to update home image: %w", failure.Storage(errors.New("database is locked"))))

	request := httptest.NewRequest(http.MethodPut, "/api/home-images/7/order", strings.NewReader(`{"display_order":1}`))

	recorder := f.serve(request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Storage error"}`, recorder.Body.String())
}
