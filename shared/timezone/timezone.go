package timezone

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	mu          sync.RWMutex
)

// Init loads the named IANA location as the application timezone.
// An empty or unknown name falls back to UTC.
func Init(name string) {
	mu.Lock()
	defer mu.Unlock()

	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		appLocation = time.UTC
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'Europe/London'")
		appLocation = time.UTC
		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

func location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	loc := location()
	if loc == nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	loc := location()
	if loc == nil {
		return t.UTC()
	}
	return t.In(loc)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	loc := location()
	if loc == nil {
		return time.UTC
	}
	return loc
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
