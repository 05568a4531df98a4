package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationCancelled = "reservation.cancelled"
)

// ReservationEvent is the payload published on every reservation lifecycle
// change, keyed by reservation ID so one reservation's events stay ordered.
type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID uint      `json:"reservationId"`
	RestaurantID  uint      `json:"restaurantId"`
	TableID       uint      `json:"tableId"`
	HostID        uint      `json:"hostId"`
	PartySize     int       `json:"partySize"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publisher writes reservation events to kafka. A nil *Publisher is a valid
// no-op, used when KAFKA_BROKER is unset.
type Publisher struct {
	Writer *kafka.Writer
}

func NewPublisher(broker, topic string) *Publisher {
	if broker == "" || topic == "" {
		return nil
	}
	return &Publisher{Writer: &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}}
}

func (p *Publisher) Publish(ctx context.Context, ev ReservationEvent) error {
	if p == nil {
		return nil
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.ReservationID), 10)),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.Writer.Close()
}
