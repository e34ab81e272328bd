package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/messaging"
)

type messagingUC struct {
	repo    messaging.MessageLogRepo
	gw      messaging.WhatsAppGW
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewMessagingUC creates a new messaging use case
func NewMessagingUC(repo messaging.MessageLogRepo, gw messaging.WhatsAppGW, m *metrics.Metrics) messaging.MessagingUC {
	return &messagingUC{
		repo:    repo,
		gw:      gw,
		metrics: m,
		now:     models.Now,
	}
}

// Send delivers body to the E.164 number to. Every attempt is logged, and a provider
// failure comes back as an unsuccessful result together with ErrProviderError.
func (uc *messagingUC) Send(ctx context.Context, to, body string, meta models.MessageMeta) (*models.SendResult, error) {
	row := uc.newRow(meta, models.DirectionOutbound, to, body)

	sid, err := uc.gw.SendWhatsApp(ctx, to, body)
	uc.metrics.ObserveOutbound(string(meta.MessageType), err == nil)

	fields := append(metaFields(meta),
		logger.String("to", utils.MaskPhoneNumber(to)),
		logger.String("message_type", string(meta.MessageType)))

	if err != nil {
		reason := err.Error()
		row.Status = models.MessageFailed
		row.Error = &reason
		uc.insert(ctx, row)

		logger.WarnCtx(ctx, "WhatsApp message failed", append(fields, logger.Err(err))...)
		return &models.SendResult{Success: false}, apperror.Provider("twilio", err)
	}

	row.Status = models.MessageSent
	row.ProviderMessageID = &sid
	uc.insert(ctx, row)

	logger.InfoCtx(ctx, "WhatsApp message sent", append(fields, logger.String("provider_message_id", sid))...)
	return &models.SendResult{Success: true, ProviderMessageID: sid}, nil
}

// RecordInbound logs a driver reply against the driver it resolved to
func (uc *messagingUC) RecordInbound(ctx context.Context, msg models.InboundMessage, meta models.MessageMeta) error {
	phone := strings.TrimPrefix(strings.TrimSpace(msg.From), "whatsapp:")
	row := uc.newRow(meta, models.DirectionInbound, phone, msg.Body)
	row.Status = models.MessageReceived
	if msg.MessageSid != "" {
		sid := msg.MessageSid
		row.ProviderMessageID = &sid
	}
	logger.InfoCtx(ctx, "WhatsApp message received", append(metaFields(meta),
		logger.String("from", utils.MaskPhoneNumber(phone)),
		logger.String("preview", utils.Truncate(msg.Body, 40)))...)
	return uc.repo.InsertMessage(ctx, row)
}

// ListBookingMessages returns the message trail of a booking
func (uc *messagingUC) ListBookingMessages(ctx context.Context, orgID, bookingID uuid.UUID) ([]*models.WhatsAppMessage, error) {
	return uc.repo.ListBookingMessages(ctx, orgID, bookingID)
}

func (uc *messagingUC) newRow(meta models.MessageMeta, direction models.MessageDirection, phone, body string) *models.WhatsAppMessage {
	return &models.WhatsAppMessage{
		ID:          uuid.New(),
		OrgID:       meta.OrgID,
		BookingID:   meta.BookingID,
		DriverID:    meta.DriverID,
		Direction:   direction,
		Phone:       phone,
		Body:        body,
		MessageType: meta.MessageType,
		CreatedAt:   uc.now(),
	}
}

// insert never fails the send; the log is best effort
func (uc *messagingUC) insert(ctx context.Context, row *models.WhatsAppMessage) {
	if err := uc.repo.InsertMessage(ctx, row); err != nil {
		logger.ErrorCtx(ctx, "Failed to log WhatsApp message",
			logger.String("message_id", row.ID.String()), logger.Err(err))
	}
}

func metaFields(meta models.MessageMeta) []logger.Field {
	fields := []logger.Field{logger.OrgID(meta.OrgID.String())}
	if meta.BookingID != nil {
		fields = append(fields, logger.BookingID(meta.BookingID.String()))
	}
	if meta.DriverID != nil {
		fields = append(fields, logger.DriverID(meta.DriverID.String()))
	}
	return fields
}
