package phone_test

import (
	"testing"

	"studio/shared/phone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{name: "local ten digits", raw: "9876543210", expected: "919876543210", ok: true},
		{name: "formatted local", raw: "(987) 654-3210", expected: "919876543210", ok: true},
		{name: "already international", raw: "919876543210", expected: "919876543210", ok: true},
		{name: "plus and spaces", raw: "+91 98765 43210", expected: "919876543210", ok: true},
		{name: "eleven digits with country code", raw: "91987654321", expected: "91987654321", ok: true},
		{name: "foreign prefix", raw: "449876543210", ok: false},
		{name: "too short", raw: "98765", ok: false},
		{name: "nine digits", raw: "987654321", ok: false},
		{name: "letters only", raw: "call me", ok: false},
		{name: "empty", raw: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := phone.Normalize(tt.raw, "91")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	inputs := []string{"9876543210", "+91-98765-43210", "919876543210", "12345678901", "abc", "0000000000"}

	for _, raw := range inputs {
		got, ok := phone.Normalize(raw, "91")
		if !ok {
			assert.Empty(t, got, raw)

			continue
		}

		assert.True(t, phone.IsDigits(got), raw)
		assert.GreaterOrEqual(t, len(got), 11, raw)
		assert.Regexp(t, "^91", got, raw)

		again, ok := phone.Normalize(got, "91")
		assert.True(t, ok, raw)
		assert.Equal(t, got, again, "normalizing twice changes %q", raw)
	}
}

func TestNormalizeOtherCountryCode(t *testing.T) {
	got, ok := phone.Normalize("5551234567", "1")
	assert.True(t, ok)
	assert.Equal(t, "15551234567", got)
}

func TestIsDigits(t *testing.T) {
	assert.True(t, phone.IsDigits("918149003738"))
	assert.False(t, phone.IsDigits(""))
	assert.False(t, phone.IsDigits("91 81"))
	assert.False(t, phone.IsDigits("٣٣"))
}
