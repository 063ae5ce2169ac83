package accountRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"garagedesk/config"
	"garagedesk/database"
	"garagedesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo constructs a new instance of MongoAccountRepo.
func NewMongoAccountRepo() AccountRepository {
	db := database.DB()
	return &MongoAccountRepo{
		coll: db.Collection(config.CollectionName("accounts")),
	}
}

const queryTimeout = 5 * time.Second

func (repo *MongoAccountRepo) List(ctx context.Context) ([]models.Account, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *MongoAccountRepo) SearchByReg(ctx context.Context, fragment string) ([]models.Account, error) {
	filter := bson.M{"vehicleReg": bson.M{
		"$regex": strings.ToUpper(fragment),
	}}
	return repo.find(ctx, filter)
}

func (repo *MongoAccountRepo) find(ctx context.Context, filter bson.M) ([]models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "vehicleReg", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("error decoding accounts: %w", err)
	}
	return accounts, nil
}

func (repo *MongoAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return repo.findOne(ctx, bson.M{"id": id})
}

func (repo *MongoAccountRepo) GetByReg(ctx context.Context, reg string) (*models.Account, error) {
	return repo.findOne(ctx, bson.M{"vehicleReg": strings.ToUpper(reg)})
}

func (repo *MongoAccountRepo) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var account models.Account
	if err := repo.coll.FindOne(ctx, filter).Decode(&account); err != nil {
		return nil, fmt.Errorf("account not found: %w", err)
	}
	return &account, nil
}

func (repo *MongoAccountRepo) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	account.VehicleReg = strings.ToUpper(account.VehicleReg)
	if _, err := repo.coll.InsertOne(ctx, account); err != nil {
		return fmt.Errorf("error creating account: %w", err)
	}
	return nil
}

func (repo *MongoAccountRepo) Update(ctx context.Context, id string, account *models.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	account.VehicleReg = strings.ToUpper(account.VehicleReg)
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": account})
	if err != nil {
		return fmt.Errorf("error updating account %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("account %s not found", id)
	}
	return nil
}

func (repo *MongoAccountRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting account %s: %w", id, err)
	}
	return nil
}
