package events

import (
	"context"
	"time"
)

// Booking event types
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// Event is the JSON payload written to the bookings topic
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	BookingID  uint      `json:"booking_id"`
	ScheduleID uint      `json:"schedule_id"`
	LessonID   uint      `json:"lesson_id"`
	Status     string    `json:"status"`
}

// Publisher delivers booking events to downstream consumers
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
