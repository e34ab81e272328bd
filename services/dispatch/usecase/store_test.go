package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/dispatch"
)

// memStore is an in-memory dispatch.DispatchRepo. A transaction works on copies
// and only publishes them when fn succeeds.
type memStore struct {
	mu            sync.Mutex
	bookings      map[uuid.UUID]models.Booking
	drivers       map[uuid.UUID]models.Driver
	conversations map[string]models.Conversation
	failUpsert    error
}

func newMemStore() *memStore {
	return &memStore{
		bookings:      map[uuid.UUID]models.Booking{},
		drivers:       map[uuid.UUID]models.Driver{},
		conversations: map[string]models.Conversation{},
	}
}

func (s *memStore) RunInTx(ctx context.Context, fn func(tx dispatch.DispatchTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{
		store:         s,
		bookings:      map[uuid.UUID]models.Booking{},
		drivers:       map[uuid.UUID]models.Driver{},
		conversations: map[string]models.Conversation{},
	}
	for k, v := range s.bookings {
		tx.bookings[k] = v
	}
	for k, v := range s.drivers {
		tx.drivers[k] = v
	}
	for k, v := range s.conversations {
		tx.conversations[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	s.bookings, s.drivers, s.conversations = tx.bookings, tx.drivers, tx.conversations
	return nil
}

func (s *memStore) FindDriverByPhone(_ context.Context, phone string) (*models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.drivers {
		if d.Phone == phone && d.DeletedAt == nil {
			d := d
			return &d, nil
		}
	}
	return nil, apperror.ErrUnknownSender
}

func (s *memStore) PeekConversation(_ context.Context, phone string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[phone]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *memStore) MarkDriverNotified(_ context.Context, bookingID, driverID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bookings[bookingID]
	if b.HasDriver(driverID) {
		b.DriverNotified = true
		s.bookings[bookingID] = b
	}
	return nil
}

func (s *memStore) MarkCustomerNotified(_ context.Context, bookingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bookings[bookingID]
	b.CustomerNotified = true
	s.bookings[bookingID] = b
	return nil
}

func (s *memStore) booking(id uuid.UUID) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookings[id]
}

func (s *memStore) driver(id uuid.UUID) models.Driver {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drivers[id]
}

func (s *memStore) conversation(phone string) (models.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[phone]
	return c, ok
}

// busyMatchesActive reports whether every driver is BUSY exactly when one booking is active for them
func (s *memStore) busyMatchesActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, d := range s.drivers {
		active := 0
		for _, b := range s.bookings {
			if b.HasDriver(id) && (b.Status == models.BookingStatusAssigned || b.Status == models.BookingStatusInProgress) {
				active++
			}
		}
		if (d.Status == models.DriverStatusBusy) != (active == 1) || active > 1 {
			return false
		}
	}
	return true
}

type memTx struct {
	store         *memStore
	bookings      map[uuid.UUID]models.Booking
	drivers       map[uuid.UUID]models.Driver
	conversations map[string]models.Conversation
}

func (t *memTx) GetBookingForUpdate(_ context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	b, ok := t.bookings[bookingID]
	if !ok || b.OrgID != orgID {
		return nil, apperror.ErrBookingNotFound
	}
	return &b, nil
}

func (t *memTx) GetDriverForUpdate(_ context.Context, orgID, driverID uuid.UUID) (*models.Driver, error) {
	d, ok := t.drivers[driverID]
	if !ok || d.OrgID != orgID || d.DeletedAt != nil {
		return nil, apperror.ErrDriverNotFound
	}
	return &d, nil
}

func (t *memTx) GetConversationForUpdate(_ context.Context, phone string) (*models.Conversation, error) {
	c, ok := t.conversations[phone]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *memTx) CountActiveBookings(_ context.Context, driverID uuid.UUID) (int, error) {
	n := 0
	for _, b := range t.bookings {
		if b.HasDriver(driverID) && (b.Status == models.BookingStatusAssigned || b.Status == models.BookingStatusInProgress) {
			n++
		}
	}
	return n, nil
}

func (t *memTx) UpdateBookingState(_ context.Context, booking *models.Booking) error {
	t.bookings[booking.ID] = *booking
	return nil
}

func (t *memTx) UpdateDriverStatus(_ context.Context, driverID uuid.UUID, status models.DriverStatus) error {
	d := t.drivers[driverID]
	d.Status = status
	t.drivers[driverID] = d
	return nil
}

func (t *memTx) UpsertConversation(_ context.Context, conversation *models.Conversation) error {
	if t.store.failUpsert != nil {
		return t.store.failUpsert
	}
	t.conversations[conversation.Phone] = *conversation
	return nil
}

type sentMessage struct {
	to   string
	body string
	meta models.MessageMeta
}

// outbox records sends and published events
type outbox struct {
	mu       sync.Mutex
	sent     []sentMessage
	inbound  []models.InboundMessage
	events   []*models.BookingEvent
	failSend bool
}

func (o *outbox) Send(_ context.Context, to, body string, meta models.MessageMeta) (*models.SendResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failSend {
		return &models.SendResult{Success: false}, nil
	}
	o.sent = append(o.sent, sentMessage{to: to, body: body, meta: meta})
	return &models.SendResult{Success: true, ProviderMessageID: "SM" + uuid.NewString()[:8]}, nil
}

func (o *outbox) RecordInbound(_ context.Context, msg models.InboundMessage, _ models.MessageMeta) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.inbound = append(o.inbound, msg)
	return nil
}

func (o *outbox) PublishBookingEvent(_ context.Context, event *models.BookingEvent) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	return nil
}

func (o *outbox) last() sentMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.sent) == 0 {
		return sentMessage{}
	}
	return o.sent[len(o.sent)-1]
}

func (o *outbox) eventTypes() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	types := make([]string, len(o.events))
	for i, e := range o.events {
		types[i] = e.Type
	}
	return types
}

func (o *outbox) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent, o.events, o.inbound = nil, nil, nil
}
