package service

import "context"

// Routing keys of events this service emits on the rentals exchange.
const (
	KeyNoteCreated          = "availability.note.created"
	KeyNoteDeleted          = "availability.note.deleted"
	KeyBookingStatusChanged = "availability.booking.status_changed"
)

// EventPublisher is implemented by *rabbitmq.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}
