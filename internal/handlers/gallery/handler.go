package gallery

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"

	"studio/infras/otel"
	assetService "studio/internal/domains/asset/service"
	"studio/internal/domains/gallery/model/dto"
	"studio/internal/domains/gallery/service"
	homeService "studio/internal/domains/home/service"
	"studio/shared/constant"
	"studio/shared/failure"
	"studio/transport/http/middleware"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Handler serves every image the site shows: the gallery, the home page images and the
// site assets.
type Handler struct {
	service service.Gallery
	home    homeService.Home
	asset   assetService.Asset
	otel    otel.Otel
	session middleware.Session
}

func New(
	service service.Gallery,
	home homeService.Home,
	asset assetService.Asset,
	otel otel.Otel,
	session middleware.Session,
) Handler {
	return Handler{
		service: service,
		home:    home,
		asset:   asset,
		otel:    otel,
		session: session,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/upload", handler.UploadImage)
	router.Get("/gallery", handler.GetGallery)
	router.Get("/home-images", handler.GetHomeImages)
	router.Get("/site-assets", handler.GetSiteAssets)

	router.Group(func(admin chi.Router) {
		admin.Use(handler.session.RequireAPI)

		admin.Delete("/gallery/*", handler.DeleteImage)
		admin.Post("/home-images", handler.AddHomeImage)
		admin.Delete("/home-images/{id}", handler.DeactivateHomeImage)
		admin.Put("/home-images/{id}/order", handler.ReorderHomeImage)
		admin.Post("/site-assets", handler.SaveSiteAsset)
	})
}

// formImage reads the uploaded image. When no usable image was sent it answers the
// request and reports false.
func formImage(w http.ResponseWriter, r *http.Request, scope otel.Scope) (multipart.File, *multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithRaw(w, http.StatusBadRequest, dto.UploadErrorResponse{Error: err.Error()})

		return nil, nil, false
	}

	file, header, err := r.FormFile(constant.FormFileImage)
	if err != nil {
		message := constant.ResponseErrorNoImage
		if r.MultipartForm != nil && len(r.MultipartForm.Value[constant.FormFileImage]) > 0 {
			message = constant.ResponseErrorEmptyFilename
		}

		response.WithRaw(w, http.StatusBadRequest, dto.UploadErrorResponse{Error: message})

		return nil, nil, false
	}

	if header.Filename == "" {
		file.Close()
		response.WithRaw(w, http.StatusBadRequest, dto.UploadErrorResponse{Error: constant.ResponseErrorEmptyFilename})

		return nil, nil, false
	}

	return file, header, true
}

// withUploadError answers with the failure code and its client facing message.
func withUploadError(w http.ResponseWriter, err error) {
	response.WithRaw(w, failure.GetCode(err), dto.UploadErrorResponse{Error: failure.GetMessage(err)})
}

// UploadImage handles an image upload to the gallery.
// @Summary Upload a gallery image
// @Description Upload an image to the image host and record it in the gallery.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file to upload"
// @Param caption formData string false "Image caption"
// @Success 201 {object} dto.UploadImageResponse "Image uploaded"
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/upload [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	file, header, ok := formImage(w, r, scope)
	if !ok {
		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{
		Image:     header,
		ImageFile: file,
		Caption:   r.FormValue(constant.FormFieldCaption),
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file_name", header.Filename).Msg("failed to upload image")

		withUploadError(w, err)

		return
	}

	scope.AddEvent("Image uploaded " + res.PublicID)

	response.WithRaw(w, http.StatusCreated, res)
}

// GetGallery returns the newest gallery images.
// @Summary List gallery images
// @Description Retrieve the newest gallery images, newest first.
// @Tags Gallery
// @Produce json
// @Success 200 {array} dto.GalleryItem "Gallery images"
// @Failure 500 {object} response.Error
// @Router /api/gallery [get]
func (handler *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGallery")
	defer scope.End()

	items, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list gallery")

		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, items)
}

// DeleteImage removes a gallery image from the host and the gallery.
// @Summary Delete a gallery image
// @Description Delete the image from the image host and remove its gallery record. Requires an admin session.
// @Tags Gallery
// @Produce json
// @Param public_id path string true "Public id of the image, such as gallery/abc.png"
// @Success 200 {object} dto.DeleteImageResponse
// @Failure 401 {object} response.Error
// @Failure 404 {object} dto.UploadErrorResponse
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/gallery/{public_id} [delete]
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	publicID, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || publicID == "" {
		response.WithRaw(w, http.StatusNotFound, dto.UploadErrorResponse{Error: constant.ResponseErrorImageNotFound})

		return
	}

	if err = handler.service.Delete(ctx, publicID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("public_id", publicID).Msg("failed to delete gallery image")

		withUploadError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, dto.DeleteImageResponse{OK: true})
}
