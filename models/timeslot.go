package models

// TimeSlot is a bookable time-of-day value. The slot string doubles as the
// natural key: deletion matches by value, not by document id.
type TimeSlot struct {
	ID   string `bson:"id" json:"id"`
	Slot string `bson:"slot" json:"slot"`
}
