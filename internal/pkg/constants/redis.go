package constants

// Redis key formats
const (
	KeyTwilioMessage = "webhook:twilio:%s" // Format: webhook:twilio:{message_sid}
	KeyStripeEvent   = "webhook:stripe:%s" // Format: webhook:stripe:{event_id}

	KeyOrgPricing = "pricing:org:%s" // Format: pricing:org:{org_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
