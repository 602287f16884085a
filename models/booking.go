package models

import "time"

// Booking is an immutable record of a customer's reservation. Service names,
// price and duration are snapshotted at booking time so the record stays
// meaningful even if the catalog changes later.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Phone         string    `bson:"phone" json:"phone"`
	Services      []string  `bson:"services" json:"services"` // Selection order, not catalog order
	Date          string    `bson:"date" json:"date"`         // "YYYY-MM-DD"
	Time          string    `bson:"time" json:"time"`         // One of the TimeSlot values at booking time
	TotalPrice    float64   `bson:"totalPrice" json:"totalPrice"`
	TotalDuration int       `bson:"totalDuration" json:"totalDuration"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
