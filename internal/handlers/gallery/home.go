package gallery

import (
	"net/http"
	"strconv"

	"studio/internal/domains/gallery/model/dto"
	homeDto "studio/internal/domains/home/model/dto"
	"studio/shared/constant"
	"studio/shared/validator"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GetHomeImages returns the active home page images.
// @Summary List home page images
// @Description Retrieve the active home page images by display order.
// @Tags Home
// @Produce json
// @Success 200 {array} homeDto.ImageItem "Home page images"
// @Failure 500 {object} response.Error
// @Router /api/home-images [get]
func (handler *Handler) GetHomeImages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomeImages")
	defer scope.End()

	items, err := handler.home.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list home images")

		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, items)
}

// AddHomeImage uploads a new home page image.
// @Summary Add a home page image
// @Description Upload an image and show it on the home page. Requires an admin session.
// @Tags Home
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file to upload"
// @Param caption formData string false "Image caption"
// @Param display_order formData int false "Position on the home page, lowest first"
// @Success 201 {object} homeDto.AddImageResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/home-images [post]
func (handler *Handler) AddHomeImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddHomeImage")
	defer scope.End()

	file, header, ok := formImage(w, r, scope)
	if !ok {
		return
	}
	defer file.Close()

	order := 0

	if raw := r.FormValue(constant.FormFieldDisplayOrder); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.WithRaw(w, http.StatusBadRequest, dto.UploadErrorResponse{Error: constant.ResponseErrorInvalidDisplayOrder})

			return
		}

		order = parsed
	}

	res, err := handler.home.Add(ctx, homeDto.AddImageRequest{
		Image:        header,
		ImageFile:    file,
		Caption:      r.FormValue(constant.FormFieldCaption),
		DisplayOrder: order,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file_name", header.Filename).Msg("failed to add home image")

		withUploadError(w, err)

		return
	}

	response.WithRaw(w, http.StatusCreated, res)
}

// DeactivateHomeImage hides a home page image.
// @Summary Deactivate a home page image
// @Description Hide the image from the home page. Requires an admin session.
// @Tags Home
// @Produce json
// @Param id path int true "Home image id"
// @Success 200 {object} dto.DeleteImageResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} dto.UploadErrorResponse
// @Router /api/home-images/{id} [delete]
func (handler *Handler) DeactivateHomeImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateHomeImage")
	defer scope.End()

	id, ok := homeImageID(w, r)
	if !ok {
		return
	}

	if err := handler.home.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to deactivate home image")

		withUploadError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, dto.DeleteImageResponse{OK: true})
}

// ReorderHomeImage moves a home page image.
// @Summary Reorder a home page image
// @Description Change the display order of a home page image. Requires an admin session.
// @Tags Home
// @Accept json
// @Produce json
// @Param id path int true "Home image id"
// @Param request body homeDto.ReorderRequest true "New display order"
// @Success 200 {object} dto.DeleteImageResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} dto.UploadErrorResponse
// @Router /api/home-images/{id}/order [put]
func (handler *Handler) ReorderHomeImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderHomeImage")
	defer scope.End()

	id, ok := homeImageID(w, r)
	if !ok {
		return
	}

	var req homeDto.ReorderRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithRaw(w, http.StatusBadRequest, dto.UploadErrorResponse{Error: constant.ResponseErrorInvalidDisplayOrder})

		return
	}

	if err := handler.home.Reorder(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to reorder home image")

		withUploadError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, dto.DeleteImageResponse{OK: true})
}

func homeImageID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.WithRaw(w, http.StatusBadRequest, dto.UploadErrorResponse{Error: constant.ResponseErrorInvalidImageID})

		return 0, false
	}

	return id, true
}

