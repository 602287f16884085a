package models

// Service is a purchasable offering from the salon catalog.
type Service struct {
	ID       string  `bson:"id" json:"id"`             // Assigned by the persistence layer on creation
	Name     string  `bson:"name" json:"name"`         // Non-empty display label
	Duration int     `bson:"duration" json:"duration"` // Minutes, positive
	Price    float64 `bson:"price" json:"price"`       // Currency units, non-negative
}
