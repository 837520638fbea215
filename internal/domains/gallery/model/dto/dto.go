package dto

import (
	"mime/multipart"
	"strings"

	"studio/infras/s3"
	"studio/internal/domains/gallery/model"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"   swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp image/gif,maxfilesize=10"`
	ImageFile multipart.File        `json:"-"`
	Caption   string                `json:"caption" validate:"max=200"`
}

func (r *UploadImageRequest) Trim() {
	r.Caption = strings.TrimSpace(r.Caption)
}

// ObjectName is a fresh unique file name keeping the image type as extension.
func (r *UploadImageRequest) ObjectName() string {
	return s3.ObjectName(r.Image)
}

func (r *UploadImageRequest) ToModel(obj *s3.Object) model.Entry {
	return model.Entry{
		ImageURL: obj.URL,
		PublicID: obj.Key,
		Caption:  r.Caption,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type UploadImageResponse struct {
	OK       bool   `json:"ok"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (r *UploadImageResponse) FromModel(m model.Entry) {
	r.OK = true
	r.URL = m.ImageURL
	r.PublicID = m.PublicID
}

type UploadErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type GalleryItem struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

func FromModels(models []model.Entry) []GalleryItem {
	items := make([]GalleryItem, 0, len(models))

	for _, m := range models {
		items = append(items, GalleryItem{URL: m.ImageURL, Caption: m.Caption})
	}

	return items
}

type DeleteImageResponse struct {
	OK bool `json:"ok"`
}
