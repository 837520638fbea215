package service

import (
	"fmt"
	"net/url"
	"strings"

	"studio/internal/domains/booking/model"
	"studio/shared"
	"studio/shared/constant"
	"studio/shared/phone"
)

const noDetails = "No details"

// BuildMessage renders the admin notification for a stored booking.
func BuildMessage(booking model.Booking) string {
	details := shared.Truncate(booking.Details, constant.BookingDetailsMaxRune)
	if details == "" {
		details = noDetails
	}

	return fmt.Sprintf(
		"🌟 NEW BOOKING #%d 🌟\n👤 %s\n📱 %s\n📦 %s\n📅 %s\n📝 %s",
		booking.ID,
		shared.Truncate(booking.Name, constant.BookingNameMaxRune),
		booking.Phone,
		shared.Truncate(booking.Package, constant.BookingPackageMaxRune),
		booking.Date,
		details,
	)
}

// AdminNumber normalizes the configured admin WhatsApp number.
func AdminNumber(raw, countryCode string) (string, bool) {
	if !phone.IsDigits(countryCode) {
		countryCode = constant.DefaultCountryCode
	}

	return phone.Normalize(raw, countryCode)
}

// BuildLink returns the wa.me deep link that opens a chat with the admin prefilled with
// message. Without a usable admin number the default number is used and the message is
// capped.
func BuildLink(adminNumber, countryCode, message string) string {
	number, ok := AdminNumber(adminNumber, countryCode)
	if !ok {
		number = constant.DefaultAdminWhatsApp
		message = shared.Truncate(message, constant.WhatsAppFallbackMaxRune)
	}

	return constant.WhatsAppBaseURL + number + "?text=" + encode(message)
}

// encode percent-encodes every byte outside the unreserved set, spaces included.
func encode(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}
