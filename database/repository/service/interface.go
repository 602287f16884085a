// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/database"
	"salonbook/models"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc models.Service) (string, error)
	DeleteByID(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Service, error)
	EnsureIndexes() error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
