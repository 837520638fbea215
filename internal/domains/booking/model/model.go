package model

import "studio/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldName      = "name"
	FieldPhone     = "phone"
	FieldPackage   = "package"
	FieldDate      = "date"
	FieldDetails   = "details"
	FieldCreatedAt = "created_at"
)

// Booking is a customer request. Phone is stored normalized and Date is free text.
type Booking struct {
	ID      int64  `db:"id"      readonly:"true"`
	Name    string `db:"name"`
	Phone   string `db:"phone"`
	Package string `db:"package"`
	Date    string `db:"date"`
	Details string `db:"details"`
	model.Metadata
}
