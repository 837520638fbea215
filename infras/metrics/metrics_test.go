package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegisterTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestIncBooking(t *testing.T) {
	before := testutil.ToFloat64(bookings.WithLabelValues(OutcomeCreated))

	IncBooking(OutcomeCreated)
	IncBooking(OutcomeCreated)

	assert.Equal(t, before+2, testutil.ToFloat64(bookings.WithLabelValues(OutcomeCreated)))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("/api/book", http.MethodPost, "200"))

	ObserveHTTP("/api/book", http.MethodPost, http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("/api/book", http.MethodPost, "200")))
}
