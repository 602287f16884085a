package timeslotRepo

import "errors"

// ErrDuplicateSlot is returned when inserting a slot value that already exists.
var ErrDuplicateSlot = errors.New("time slot value already exists")
