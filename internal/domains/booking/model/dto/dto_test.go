package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"studio/internal/domains/booking/model"
	"studio/internal/domains/booking/model/dto"
	gModel "studio/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestBookingRequestFromMap(t *testing.T) {
	req := dto.BookingRequestFromMap(map[string]any{
		"name":    " Asha ",
		"phone":   json.Number("9876543210"),
		"package": "Gold",
		"date":    nil,
	})

	assert.Equal(t, " Asha ", req.Name)
	assert.Equal(t, "9876543210", req.Phone)
	assert.Equal(t, "Gold", req.Package)
	assert.Empty(t, req.Date)
	assert.Empty(t, req.Details)
}

func TestBookingRequestFromMap_NumericValues(t *testing.T) {
	req := dto.BookingRequestFromMap(map[string]any{
		"phone":   float64(919876543210),
		"package": true,
		"date":    json.Number("20250105"),
	})

	assert.Equal(t, "919876543210", req.Phone)
	assert.Equal(t, "true", req.Package)
	assert.Equal(t, "20250105", req.Date)
}

func TestBookingRequest_TrimAndToModel(t *testing.T) {
	req := dto.BookingRequest{Name: " Asha ", Phone: " 98765 43210 ", Package: " Gold\t", Date: " soon ", Details: "\n"}
	req.Trim()

	booking := req.ToModel("919876543210")

	assert.Equal(t, "Asha", booking.Name)
	assert.Equal(t, "919876543210", booking.Phone)
	assert.Equal(t, "Gold", booking.Package)
	assert.Equal(t, "soon", booking.Date)
	assert.Empty(t, booking.Details)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingsResponse_FromModels(t *testing.T) {
	var res dto.BookingsResponse
	res.FromModels(nil, 0)

	assert.NotNil(t, res.Bookings)
	assert.Empty(t, res.Bookings)

	res.FromModels([]model.Booking{{ID: 3, Name: "Ravi", Metadata: gModel.Metadata{CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}}}, 1)
	assert.Equal(t, int64(3), res.Bookings[0].ID)
	assert.Equal(t, "2025-01-01T00:00:00Z", res.Bookings[0].CreatedAt)
}
