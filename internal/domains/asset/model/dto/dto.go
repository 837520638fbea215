package dto

import (
	"mime/multipart"
	"strings"

	"studio/infras/s3"
	"studio/internal/domains/asset/model"
	"studio/shared/timezone"
)

type SaveAssetRequest struct {
	Image     *multipart.FileHeader `json:"image"      swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp image/gif image/svg+xml,maxfilesize=10"`
	ImageFile multipart.File        `json:"-"`
	AssetType string                `json:"asset_type" validate:"required,max=64"`
	AltText   string                `json:"alt_text"   validate:"max=255"`
}

func (r *SaveAssetRequest) Trim() {
	r.AssetType = strings.TrimSpace(r.AssetType)
	r.AltText = strings.TrimSpace(r.AltText)
}

func (r *SaveAssetRequest) ToModel(obj *s3.Object) model.SiteAsset {
	return model.SiteAsset{
		AssetType: r.AssetType,
		ImageURL:  obj.URL,
		PublicID:  obj.Key,
		AltText:   r.AltText,
		UpdatedAt: timezone.Now(),
	}
}

type SaveAssetResponse struct {
	OK       bool   `json:"ok"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

type AssetItem struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text"`
}

// FromModels keys assets by type. Earlier rows win, so callers pass the newest first.
func FromModels(models []model.SiteAsset) map[string]AssetItem {
	assets := make(map[string]AssetItem, len(models))

	for _, m := range models {
		if _, ok := assets[m.AssetType]; ok {
			continue
		}

		assets[m.AssetType] = AssetItem{URL: m.ImageURL, AltText: m.AltText}
	}

	return assets
}
