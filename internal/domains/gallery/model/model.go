package model

import "studio/shared/model"

const (
	TableName  = "gallery"
	EntityName = "gallery"

	FieldID       = "id"
	FieldImageURL = "image_url"
	FieldPublicID = "public_id"
	FieldCaption  = "caption"

	// Directory is the object key prefix of every gallery image on the host.
	Directory = "gallery"
)

// Entry is an image uploaded to the host. PublicID is the host object key.
type Entry struct {
	ID       int64  `db:"id"        readonly:"true"`
	ImageURL string `db:"image_url"`
	PublicID string `db:"public_id"`
	Caption  string `db:"caption"`
	model.Metadata
}
