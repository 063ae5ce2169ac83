package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.DB()
	return &MongoAppointmentRepo{
		coll: db.Collection(config.CollectionName("appointments")),
	}
}

const queryTimeout = 5 * time.Second

func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("appointment %s not found: %w", id, err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) GetByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{"date": date})
}

func (repo *MongoAppointmentRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{"date": bson.M{"$gte": from, "$lte": to}})
}

func (repo *MongoAppointmentRepo) GetByRolloverGroup(ctx context.Context, groupID string) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{"rolloverGroupId": groupID})
}

func (repo *MongoAppointmentRepo) GetByVehicleReg(ctx context.Context, reg string) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{"details.vehicleReg": reg})
}

func (repo *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startSlot", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) Update(ctx context.Context, id string, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": appt}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

func (repo *MongoAppointmentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting appointment %s: %w", id, err)
	}
	return nil
}
