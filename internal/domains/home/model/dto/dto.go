package dto

import (
	"mime/multipart"
	"strings"

	"studio/infras/s3"
	"studio/internal/domains/home/model"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type AddImageRequest struct {
	Image        *multipart.FileHeader `json:"image"         swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp image/gif,maxfilesize=10"`
	ImageFile    multipart.File        `json:"-"`
	Caption      string                `json:"caption"       validate:"max=200"`
	DisplayOrder int                   `json:"display_order" validate:"min=0"`
}

func (r *AddImageRequest) Trim() {
	r.Caption = strings.TrimSpace(r.Caption)
}

func (r *AddImageRequest) ToModel(obj *s3.Object) model.Image {
	return model.Image{
		ImageURL:     obj.URL,
		PublicID:     obj.Key,
		Caption:      r.Caption,
		DisplayOrder: r.DisplayOrder,
		IsActive:     true,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type AddImageResponse struct {
	OK       bool   `json:"ok"`
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (r *AddImageResponse) FromModel(m model.Image) {
	r.OK = true
	r.ID = m.ID
	r.URL = m.ImageURL
	r.PublicID = m.PublicID
}

type ReorderRequest struct {
	DisplayOrder *int `json:"display_order" validate:"required,min=0"`
}

type ImageItem struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

func FromModels(models []model.Image) []ImageItem {
	items := make([]ImageItem, 0, len(models))

	for _, m := range models {
		items = append(items, ImageItem{
			ID:      m.ID,
			URL:     m.ImageURL,
			Caption: m.Caption,
			Order:   m.DisplayOrder,
		})
	}

	return items
}
