package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"studio/internal/domains/booking/model"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type BookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Package string `json:"package"`
	Date    string `json:"date"`
	Details string `json:"details"`
}

// BookingRequestFromMap reads the booking fields from a decoded JSON object. Missing and
// null fields are empty. Numbers keep their literal digits, other values are rendered as text.
func BookingRequestFromMap(data map[string]any) BookingRequest {
	return BookingRequest{
		Name:    stringField(data, model.FieldName),
		Phone:   stringField(data, model.FieldPhone),
		Package: stringField(data, model.FieldPackage),
		Date:    stringField(data, model.FieldDate),
		Details: stringField(data, model.FieldDetails),
	}
}

func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r *BookingRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Package = strings.TrimSpace(r.Package)
	r.Date = strings.TrimSpace(r.Date)
	r.Details = strings.TrimSpace(r.Details)
}

func (r *BookingRequest) ToModel(normalizedPhone string) model.Booking {
	return model.Booking{
		Name:    r.Name,
		Phone:   normalizedPhone,
		Package: r.Package,
		Date:    r.Date,
		Details: r.Details,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

// SubmitResult is what a stored booking hands back to the caller.
type SubmitResult struct {
	BookingID int64
	WaLink    string
}

type SubmitResponse struct {
	Success   bool   `json:"success"`
	WaLink    string `json:"wa_link"`
	BookingID int64  `json:"booking_id"`
	Message   string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Debug   string `json:"debug,omitempty"`
}

type BookingResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Package string `json:"package"`
	Date    string `json:"date"`
	Details string `json:"details"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.Package = m.Package
	r.Date = m.Date
	r.Details = m.Details
	r.Metadata.FromModel(m.Metadata)
}

type BookingsResponse struct {
	Total    int               `json:"total"`
	Bookings []BookingResponse `json:"bookings"`
}

func (r *BookingsResponse) FromModels(models []model.Booking, total int) {
	r.Total = total
	r.Bookings = make([]BookingResponse, 0, len(models))

	for _, m := range models {
		var booking BookingResponse
		booking.FromModel(m)

		r.Bookings = append(r.Bookings, booking)
	}
}

// BookingCreatedEvent is published once a booking is stored.
type BookingCreatedEvent struct {
	BookingID int64     `json:"booking_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Package   string    `json:"package"`
	Date      string    `json:"date"`
	WaLink    string    `json:"wa_link"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *BookingCreatedEvent) FromModel(m model.Booking, waLink string) {
	e.BookingID = m.ID
	e.Name = m.Name
	e.Phone = m.Phone
	e.Package = m.Package
	e.Date = m.Date
	e.WaLink = waLink
	e.CreatedAt = m.CreatedAt
}
