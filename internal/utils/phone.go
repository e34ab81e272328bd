package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var e164 = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhone turns a raw or WhatsApp-addressed number into E.164.
// A national number with a leading 0 takes defaultCountryCode.
func NormalizePhone(raw, defaultCountryCode string) (string, error) {
	stripped := strings.TrimSpace(raw)
	stripped = strings.TrimPrefix(strings.ToLower(stripped), "whatsapp:")
	replacer := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")
	stripped = replacer.Replace(stripped)

	switch {
	case strings.HasPrefix(stripped, "+"):
	case strings.HasPrefix(stripped, "00"):
		stripped = "+" + stripped[2:]
	case strings.HasPrefix(stripped, "0"):
		if defaultCountryCode == "" {
			return "", fmt.Errorf("invalid phone number %q: no country code", raw)
		}
		stripped = "+" + strings.TrimPrefix(defaultCountryCode, "+") + stripped[1:]
	default:
		stripped = "+" + stripped
	}

	if !e164.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number %q", raw)
	}
	return stripped, nil
}

// WhatsAppAddress formats an E.164 number as a WhatsApp channel address
func WhatsAppAddress(phone string) string {
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
