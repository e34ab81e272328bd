package gateway

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strings"

	"github.com/piresc/chauffeur/internal/pkg/apperror"
)

// SignatureHeader carries the request signature on Twilio webhooks
const SignatureHeader = "X-Twilio-Signature"

// TwilioSignature computes the signature Twilio sends for a form POST to fullURL: the
// URL followed by every parameter name and value in name order, HMAC-SHA1 keyed with the
// auth token, base64 encoded
func TwilioSignature(authToken, fullURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(fullURL)
	for _, k := range keys {
		for _, v := range params[k] {
			sb.WriteString(k)
			sb.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(sb.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyTwilioSignature checks a webhook signature in constant time
func VerifyTwilioSignature(authToken, fullURL string, params url.Values, signature string) error {
	if authToken == "" || signature == "" {
		return apperror.ErrInvalidSignature
	}
	expected := TwilioSignature(authToken, fullURL, params)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return apperror.ErrInvalidSignature
	}
	return nil
}
