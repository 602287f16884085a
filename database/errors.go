package database

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsPermissionDenied reports whether err is a MongoDB authorization failure,
// as opposed to a transient or network one.
func IsPermissionDenied(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == 13 // Unauthorized
	}
	return false
}
