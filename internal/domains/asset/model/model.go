package model

import "time"

const (
	TableName  = "site_assets"
	EntityName = "site_asset"

	FieldID        = "id"
	FieldAssetType = "asset_type"
	FieldImageURL  = "image_url"
	FieldAltText   = "alt_text"
	FieldUpdatedAt = "updated_at"

	Directory = "assets"
)

// SiteAsset is a named site image such as the logo. There is one row per asset type.
type SiteAsset struct {
	ID        int64     `db:"id"         readonly:"true"`
	AssetType string    `db:"asset_type"`
	ImageURL  string    `db:"image_url"`
	PublicID  string    `db:"public_id"`
	AltText   string    `db:"alt_text"`
	UpdatedAt time.Time `db:"updated_at"`
}
