package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a snapshot of a product at the moment it was added to the
// cart. It is never updated if the source product changes later.
type CartItem struct {
	// EntryID distinguishes duplicate cart entries for the same product,
	// so a remove can target exactly one instance.
	EntryID     uuid.UUID `bson:"entry_id" json:"entry_id"`
	ProductID   int64     `bson:"product_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	Price       float64   `bson:"price" json:"price"`
	Rate        float64   `bson:"rate" json:"rate"`
}

// User is an identity record with its embedded cart. Cart order is
// insertion order; duplicate product ids are legal (multiset).
type User struct {
	ID        uuid.UUID  `bson:"_id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Email     string     `bson:"email" json:"email"`
	Password  string     `bson:"password" json:"-"`
	Cart      []CartItem `bson:"cart" json:"cart"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}
