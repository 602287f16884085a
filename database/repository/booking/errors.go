package bookingRepo

import "errors"

// ErrSlotTaken is returned when the unique (date, time) index rejects an insert.
var ErrSlotTaken = errors.New("booking for this date and time already exists")
