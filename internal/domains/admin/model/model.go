package model

import "studio/shared/model"

const (
	TableName  = "admin_users"
	EntityName = "admin"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldPasswordHash = "password_hash"
)

type Admin struct {
	ID           int64  `db:"id"            readonly:"true"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	model.Metadata
}
