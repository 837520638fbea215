package gallery

import (
	"net/http"

	assetDto "studio/internal/domains/asset/model/dto"
	"studio/shared/constant"
	"studio/transport/http/response"

	"github.com/rs/zerolog/log"
)

// GetSiteAssets returns the current site assets keyed by asset type.
// @Summary List site assets
// @Description Retrieve the current image of every asset type, such as the logo.
// @Tags Assets
// @Produce json
// @Success 200 {object} map[string]assetDto.AssetItem "Site assets by type"
// @Failure 500 {object} response.Error
// @Router /api/site-assets [get]
func (handler *Handler) GetSiteAssets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSiteAssets")
	defer scope.End()

	assets, err := handler.asset.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list site assets")

		response.WithError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, assets)
}

// SaveSiteAsset uploads the image of an asset type, replacing the current one.
// @Summary Save a site asset
// @Description Upload the image of an asset type, replacing the current one. Requires an admin session.
// @Tags Assets
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file to upload"
// @Param asset_type formData string true "Asset type, such as logo"
// @Param alt_text formData string false "Alternative text"
// @Success 200 {object} assetDto.SaveAssetResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/site-assets [post]
func (handler *Handler) SaveSiteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveSiteAsset")
	defer scope.End()

	file, header, ok := formImage(w, r, scope)
	if !ok {
		return
	}
	defer file.Close()

	res, err := handler.asset.Save(ctx, assetDto.SaveAssetRequest{
		Image:     header,
		ImageFile: file,
		AssetType: r.FormValue(constant.FormFieldAssetType),
		AltText:   r.FormValue(constant.FormFieldAltText),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("file_name", header.Filename).Msg("failed to save site asset")

		withUploadError(w, err)

		return
	}

	response.WithRaw(w, http.StatusOK, res)
}
