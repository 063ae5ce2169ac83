// File: database/repository/report/report_mongo.go
package reportRepo

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

// RollupRepository stores the nightly per-technician hours rollups so the
// reports pages don't re-aggregate raw appointments on every request.
type RollupRepository interface {
	Upsert(ctx context.Context, rollup models.DailyHoursRollup) error
	GetRange(ctx context.Context, from, to string) ([]models.DailyHoursRollup, error)
}

// MongoRollupRepo implements RollupRepository using MongoDB.
type MongoRollupRepo struct {
	coll *mongo.Collection
}

// NewMongoRollupRepo constructs a new instance of MongoRollupRepo.
func NewMongoRollupRepo() RollupRepository {
	db := database.DB()
	return &MongoRollupRepo{
		coll: db.Collection(config.CollectionName("tech_hours_daily")),
	}
}

const queryTimeout = 5 * time.Second

func (repo *MongoRollupRepo) Upsert(ctx context.Context, rollup models.DailyHoursRollup) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"date": rollup.Date, "technician": rollup.Technician}
	update := bson.M{"$set": rollup}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting rollup for %s/%s: %w", rollup.Date, rollup.Technician, err)
	}
	return nil
}

func (repo *MongoRollupRepo) GetRange(ctx context.Context, from, to string) ([]models.DailyHoursRollup, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching rollups: %w", err)
	}
	defer cursor.Close(ctx)

	var rollups []models.DailyHoursRollup
	if err := cursor.All(ctx, &rollups); err != nil {
		return nil, fmt.Errorf("error decoding rollups: %w", err)
	}
	return rollups, nil
}
