package models

import (
	"time"

	"github.com/google/uuid"
)

const OrderStatusPending = "pending"

// Order is the immutable record of a completed checkout. Items and email
// are denormalized copies taken at checkout time, so later cart or
// profile changes never alter order history.
type Order struct {
	ID              uuid.UUID  `bson:"_id" json:"id"`
	UserID          uuid.UUID  `bson:"user_id" json:"user_id"`
	UserEmail       string     `bson:"user_email" json:"user_email"`
	Items           []CartItem `bson:"items" json:"items"`
	TotalAmount     int64      `bson:"total_amount" json:"total_amount"`
	PaymentIntentID string     `bson:"payment_intent_id" json:"payment_intent_id"`
	Created         time.Time  `bson:"created" json:"created"`
	Status          string     `bson:"status" json:"status"`
}

// OrderCreatedEvent is published to Kafka after an order is persisted.
type OrderCreatedEvent struct {
	Event           string    `json:"event"`
	OrderID         uuid.UUID `json:"order_id"`
	UserID          uuid.UUID `json:"user_id"`
	TotalAmount     int64     `json:"total_amount"`
	PaymentIntentID string    `json:"payment_intent_id"`
	Timestamp       time.Time `json:"timestamp"`
}
