package messaging

import "context"

// WhatsAppGW delivers a WhatsApp message through the provider
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/chauffeur/services/messaging WhatsAppGW
type WhatsAppGW interface {
	// SendWhatsApp sends body to an E.164 number and returns the provider message id
	SendWhatsApp(ctx context.Context, to, body string) (string, error)
}
