package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/cetler74/dbcars-sub001/internal/dto"
	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
)

type BookingConsumer struct {
	svc service.BookingService
}

func NewBookingConsumer(svc service.BookingService) *BookingConsumer {
	return &BookingConsumer{svc: svc}
}

// Start listens for booking messages from the rental backend and mirrors them
// into the local booking table.
func (bc *BookingConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			bc.handleMessage(msg)
		}
		log.Println("[BookingConsumer] channel closed, stopping consumer")
	}()
}

func (bc *BookingConsumer) handleMessage(msg amqp.Delivery) {
	var event dto.BookingEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("[BookingConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	status, err := models.ParseBookingStatus(event.RawStatus())
	if err != nil {
		log.Printf("[BookingConsumer] dropping booking %d: %v", event.ID, err)
		msg.Nack(false, false)
		return
	}

	booking := &models.Booking{
		ID:           event.ID,
		VehicleID:    event.VehicleID,
		UnitID:       event.UnitID,
		Reference:    event.Reference,
		CustomerName: event.CustomerName,
		PickupDate:   event.PickupDate,
		DropoffDate:  event.DropoffDate,
		Status:       status,
	}

	if err := bc.svc.SyncBooking(context.Background(), booking); err != nil {
		if errors.Is(err, service.ErrInvalidBooking) || errors.Is(err, service.ErrInvalidStatus) {
			log.Printf("[BookingConsumer] dropping booking %d: %v", event.ID, err)
			msg.Nack(false, false)
			return
		}
		log.Printf("[BookingConsumer] failed to sync booking %d: %v", event.ID, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[BookingConsumer] synced booking %d (%s) as %s", booking.ID, msg.RoutingKey, booking.Status)
	msg.Ack(false)
}
