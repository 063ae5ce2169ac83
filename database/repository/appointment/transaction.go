package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"garagedesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReplaceJob swaps one logical job's segments in a single transaction:
// delete the old records, run the caller's verify step against the
// transactional snapshot, insert the new segments. Either everything lands
// or nothing does, which is what keeps two near-simultaneous bookings from
// both passing a stale conflict check.
func (repo *MongoAppointmentRepo) ReplaceJob(ctx context.Context, removeIDs []string, segments []models.Appointment, verify func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	session, err := repo.coll.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("error starting session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if len(removeIDs) > 0 {
			if _, err := repo.coll.DeleteMany(sc, bson.M{"id": bson.M{"$in": removeIDs}}); err != nil {
				return nil, fmt.Errorf("error removing replaced segments: %w", err)
			}
		}
		if verify != nil {
			if err := verify(sc); err != nil {
				return nil, err
			}
		}
		if len(segments) > 0 {
			docs := make([]interface{}, len(segments))
			for i := range segments {
				docs[i] = segments[i]
			}
			if _, err := repo.coll.InsertMany(sc, docs); err != nil {
				return nil, fmt.Errorf("error inserting segments: %w", err)
			}
		}
		return nil, nil
	})
	if err != nil {
		return err
	}
	return nil
}
