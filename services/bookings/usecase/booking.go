package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/bookings"
	"github.com/piresc/chauffeur/services/pricing"
)

const maxListLimit = 200

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

type bookingUC struct {
	cfg          *models.Config
	bookingRepo  bookings.BookingRepo
	driverLookup bookings.DriverLookup
	bookingGW    bookings.BookingGW
	pricingUC    pricing.PricingUC
	now          func() time.Time
}

// NewBookingUC creates a new booking use case
func NewBookingUC(
	cfg *models.Config,
	bookingRepo bookings.BookingRepo,
	driverLookup bookings.DriverLookup,
	bookingGW bookings.BookingGW,
	pricingUC pricing.PricingUC,
) bookings.BookingUC {
	return &bookingUC{
		cfg:          cfg,
		bookingRepo:  bookingRepo,
		driverLookup: driverLookup,
		bookingGW:    bookingGW,
		pricingUC:    pricingUC,
		now:          models.Now,
	}
}

// CreateBooking records a dispatcher booking. With a distance the price is computed from the
// organization's rates, otherwise the manual quote in the request is used.
func (uc *bookingUC) CreateBooking(ctx context.Context, orgID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error) {
	if req == nil {
		return nil, apperror.Validation("request body is required")
	}
	booking, err := uc.newBooking(orgID, &req.BookingDetails, models.BookingSourceDispatcher)
	if err != nil {
		return nil, err
	}

	if req.Distance != nil {
		quote, err := uc.pricingUC.Quote(ctx, orgID, req.VehicleClass, *req.Distance)
		if err != nil {
			return nil, err
		}
		booking.Distance = *req.Distance
		booking.Price = quote.Total
		booking.Currency = quote.Currency
		booking.PriceValidated = true
	} else {
		currency := strings.ToUpper(strings.TrimSpace(req.Currency))
		if req.Price <= 0 {
			return nil, apperror.Validation("price must be positive when no distance is given")
		}
		if !currencyCode.MatchString(currency) {
			return nil, apperror.Validation("currency must be an ISO 4217 code")
		}
		booking.Price = req.Price
		booking.Currency = currency
	}

	switch req.PaymentStatus {
	case "":
	case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusInvoiced:
		booking.PaymentStatus = req.PaymentStatus
	default:
		return nil, apperror.Validation("payment_status must be PENDING, PAID or INVOICED")
	}

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	uc.created(ctx, booking)
	return booking, nil
}

// CreatePublicBooking records a widget booking. The price is always computed server-side.
func (uc *bookingUC) CreatePublicBooking(ctx context.Context, orgID uuid.UUID, req *models.PublicBookingRequest) (*models.Booking, error) {
	if req == nil {
		return nil, apperror.Validation("request body is required")
	}
	booking, err := uc.newBooking(orgID, &req.BookingDetails, models.BookingSourceWidget)
	if err != nil {
		return nil, err
	}

	quote, err := uc.pricingUC.Quote(ctx, orgID, req.VehicleClass, req.Distance)
	if err != nil {
		return nil, err
	}
	booking.Distance = req.Distance
	booking.Price = quote.Total
	booking.Currency = quote.Currency
	booking.PriceValidated = true

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}
	uc.created(ctx, booking)
	return booking, nil
}

func (uc *bookingUC) GetBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	return uc.bookingRepo.GetBooking(ctx, orgID, bookingID)
}

func (uc *bookingUC) ListBookings(ctx context.Context, orgID uuid.UUID, filter models.BookingFilter) ([]*models.Booking, error) {
	for _, s := range filter.Statuses {
		if !s.Valid() {
			return nil, apperror.Validation("invalid booking status %q", s)
		}
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, apperror.Validation("from must be before to")
	}
	return uc.bookingRepo.ListBookings(ctx, orgID, filter)
}

// UpdateBooking changes customer and trip fields of a booking that is not closed
func (uc *bookingUC) UpdateBooking(ctx context.Context, orgID, bookingID uuid.UUID, req *models.UpdateBookingRequest) (*models.Booking, error) {
	if req == nil {
		return nil, apperror.Validation("request body is required")
	}
	booking, err := uc.bookingRepo.GetBooking(ctx, orgID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status.IsTerminal() {
		return nil, apperror.ErrBookingClosed
	}

	details := models.BookingDetails{
		CustomerName:    pick(req.CustomerName, booking.CustomerName),
		CustomerEmail:   pick(req.CustomerEmail, booking.CustomerEmail),
		CustomerPhone:   pick(req.CustomerPhone, booking.CustomerPhone),
		PickupLocation:  pick(req.PickupLocation, booking.PickupLocation),
		DropoffLocation: pick(req.DropoffLocation, booking.DropoffLocation),
		PickupAt:        booking.PickupAt,
		Passengers:      booking.Passengers,
		VehicleClass:    booking.VehicleClass,
		Notes:           pick(req.Notes, booking.Notes),
	}
	if req.PickupAt != nil {
		details.PickupAt = req.PickupAt.UTC()
	}
	if req.Passengers != nil {
		details.Passengers = *req.Passengers
	}

	updated, err := uc.newBooking(orgID, &details, booking.Source)
	if err != nil {
		return nil, err
	}
	booking.CustomerName = updated.CustomerName
	booking.CustomerEmail = updated.CustomerEmail
	booking.CustomerPhone = updated.CustomerPhone
	booking.PickupLocation = updated.PickupLocation
	booking.DropoffLocation = updated.DropoffLocation
	booking.PickupAt = updated.PickupAt
	booking.Passengers = updated.Passengers
	booking.UpdatedAt = uc.now()

	// the payment marker belongs to payments; only the dispatcher's text is written
	writeNotes := req.Notes != nil
	if writeNotes {
		booking.Notes = utils.StripMarker(updated.Notes, models.PendingPaymentMarker)
	}
	if err := uc.bookingRepo.UpdateBookingDetails(ctx, booking, writeNotes); err != nil {
		return nil, err
	}
	return booking, nil
}

// Receipt renders the booking as a PDF
func (uc *bookingUC) Receipt(ctx context.Context, orgID, bookingID uuid.UUID) ([]byte, error) {
	return nrpkg.WithSegmentValue(ctx, "Bookings.Receipt", func() ([]byte, error) {
		booking, err := uc.bookingRepo.GetBooking(ctx, orgID, bookingID)
		if err != nil {
			return nil, err
		}

		var driver *models.Driver
		if booking.DriverID != nil {
			driver, err = uc.driverLookup.GetDriver(ctx, orgID, *booking.DriverID)
			if err != nil {
				logger.WarnCtx(ctx, "Receipt rendered without driver",
					logger.BookingID(booking.ID.String()),
					logger.Err(err))
				driver = nil
			}
		}

		pdf, err := RenderReceipt(booking, driver, uc.now())
		if err != nil {
			return nil, fmt.Errorf("failed to render receipt: %w", err)
		}
		return pdf, nil
	})
}

// newBooking validates details and builds a PENDING booking from them
func (uc *bookingUC) newBooking(orgID uuid.UUID, details *models.BookingDetails, source models.BookingSource) (*models.Booking, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(details.CustomerEmail)
	if email != "" && !utils.IsValidEmail(email) {
		return nil, apperror.Validation("invalid customer_email")
	}
	phone := ""
	if strings.TrimSpace(details.CustomerPhone) != "" {
		normalized, err := utils.NormalizePhone(details.CustomerPhone, uc.cfg.Dispatch.DefaultCountryCode)
		if err != nil {
			return nil, apperror.Validation("invalid customer_phone")
		}
		phone = normalized
	}

	now := uc.now()
	return &models.Booking{
		ID:              uuid.New(),
		OrgID:           orgID,
		CustomerName:    utils.SanitizeString(details.CustomerName),
		CustomerEmail:   email,
		CustomerPhone:   phone,
		PickupLocation:  strings.TrimSpace(details.PickupLocation),
		DropoffLocation: strings.TrimSpace(details.DropoffLocation),
		PickupAt:        details.PickupAt.UTC(),
		Passengers:      details.Passengers,
		VehicleClass:    strings.TrimSpace(details.VehicleClass),
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		Notes:           strings.TrimSpace(details.Notes),
		Source:          source,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (uc *bookingUC) created(ctx context.Context, booking *models.Booking) {
	logger.InfoCtx(ctx, "Booking created",
		logger.OrgID(booking.OrgID.String()),
		logger.BookingID(booking.ID.String()),
		logger.String("source", string(booking.Source)),
		logger.Int64("price", booking.Price))

	event := &models.BookingEvent{
		Type:          constants.SubjectBookingCreated,
		OrgID:         booking.OrgID,
		BookingID:     booking.ID,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		OccurredAt:    booking.CreatedAt,
	}
	if err := uc.bookingGW.PublishBookingEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking event",
			logger.BookingID(booking.ID.String()),
			logger.Err(err))
	}
}

func pick(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
