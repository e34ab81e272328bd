package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    string
		expectError bool
	}{
		{name: "E.164 passthrough", raw: "+447700900123", expected: "+447700900123"},
		{name: "WhatsApp address", raw: "whatsapp:+447700900123", expected: "+447700900123"},
		{name: "WhatsApp address mixed case", raw: "WhatsApp:+44 7700 900123", expected: "+447700900123"},
		{name: "International 00 prefix", raw: "00447700900123", expected: "+447700900123"},
		{name: "National number", raw: "07700 900123", expected: "+447700900123"},
		{name: "Dashes and parentheses", raw: "+1 (415) 523-8886", expected: "+14155238886"},
		{name: "Digits only", raw: "447700900123", expected: "+447700900123"},
		{name: "Too short", raw: "+4412", expectError: true},
		{name: "Letters", raw: "call me", expectError: true},
		{name: "Empty", raw: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, "44")
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizePhone_NoDefaultCountry(t *testing.T) {
	_, err := NormalizePhone("07700900123", "")
	assert.Error(t, err)
}

func TestWhatsAppAddress(t *testing.T) {
	assert.Equal(t, "whatsapp:+447700900123", WhatsAppAddress("+447700900123"))
	assert.Equal(t, "whatsapp:+447700900123", WhatsAppAddress("whatsapp:+447700900123"))
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "********0123", MaskPhoneNumber("+447700900123"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
}
