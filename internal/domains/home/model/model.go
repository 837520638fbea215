package model

import "studio/shared/model"

const (
	TableName  = "home_images"
	EntityName = "home_image"

	FieldID           = "id"
	FieldImageURL     = "image_url"
	FieldCaption      = "caption"
	FieldDisplayOrder = "display_order"
	FieldIsActive     = "is_active"

	Directory = "home"
)

// Image is shown on the landing page. Deactivated images stay on the host.
type Image struct {
	ID           int64  `db:"id"            readonly:"true"`
	ImageURL     string `db:"image_url"`
	PublicID     string `db:"public_id"`
	Caption      string `db:"caption"`
	DisplayOrder int    `db:"display_order"`
	IsActive     bool   `db:"is_active"`
	model.Metadata
}
