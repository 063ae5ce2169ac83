package technicianRepo

import (
	"context"
	"fmt"
	"time"

	"garagedesk/config"
	"garagedesk/database"
	"garagedesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTechnicianRepo implements TechnicianRepository using MongoDB.
type MongoTechnicianRepo struct {
	coll *mongo.Collection
}

// NewMongoTechnicianRepo constructs a new instance of MongoTechnicianRepo.
func NewMongoTechnicianRepo() TechnicianRepository {
	db := database.DB()
	return &MongoTechnicianRepo{
		coll: db.Collection(config.CollectionName("technicians")),
	}
}

const queryTimeout = 5 * time.Second

func (repo *MongoTechnicianRepo) List(ctx context.Context) ([]models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching technicians: %w", err)
	}
	defer cursor.Close(ctx)

	var techs []models.Technician
	if err := cursor.All(ctx, &techs); err != nil {
		return nil, fmt.Errorf("error decoding technicians: %w", err)
	}
	return techs, nil
}

func (repo *MongoTechnicianRepo) GetByID(ctx context.Context, id string) (*models.Technician, error) {
	return repo.findOne(ctx, bson.M{"id": id})
}

func (repo *MongoTechnicianRepo) GetByName(ctx context.Context, name string) (*models.Technician, error) {
	return repo.findOne(ctx, bson.M{"name": name})
}

func (repo *MongoTechnicianRepo) findOne(ctx context.Context, filter bson.M) (*models.Technician, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var tech models.Technician
	if err := repo.coll.FindOne(ctx, filter).Decode(&tech); err != nil {
		return nil, fmt.Errorf("technician not found: %w", err)
	}
	return &tech, nil
}

func (repo *MongoTechnicianRepo) Create(ctx context.Context, tech *models.Technician) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, tech); err != nil {
		return fmt.Errorf("error creating technician: %w", err)
	}
	return nil
}

func (repo *MongoTechnicianRepo) Update(ctx context.Context, id string, tech *models.Technician) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": tech})
	if err != nil {
		return fmt.Errorf("error updating technician %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("technician %s not found", id)
	}
	return nil
}

func (repo *MongoTechnicianRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting technician %s: %w", id, err)
	}
	return nil
}
