package appointments

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func buildAppointmentFilter(filter *models.AppointmentFilter) (bson.M, error) {
	query := bson.M{}
	if filter == nil {
		return query, nil
	}

	if filter.ID != "" {
		objectID, err := primitive.ObjectIDFromHex(filter.ID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		query["_id"] = objectID
	}
	if filter.ParentID != "" {
		query["parent_id"] = filter.ParentID
	}
	if filter.DoctorID != "" {
		query["doctor_id"] = filter.DoctorID
	}

	status := bson.M{}
	if len(filter.Statuses) > 0 {
		status["$in"] = filter.Statuses
	}
	if len(filter.ExcludeStatuses) > 0 {
		status["$nin"] = filter.ExcludeStatuses
	}
	if len(status) > 0 {
		query["status"] = status
	}
	return query, nil
}

func (repo *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindOne(ctx context.Context, filter *models.AppointmentFilter) (*models.Appointment, error) {
	query, err := buildAppointmentFilter(filter)
	if err != nil {
		return nil, err
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, query).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// FindAll returns the matching appointments, latest appointment date first.
func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error) {
	query, err := buildAppointmentFilter(filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "appointment_date", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]*models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment, filter *models.AppointmentFilter) (bool, error) {
	query, err := buildAppointmentFilter(filter)
	if err != nil {
		return false, err
	}

	update := bson.M{"$set": bson.M{
		"doctor_id":             appointment.DoctorID,
		"child_id":              appointment.ChildID,
		"appointment_date":      appointment.AppointmentDate,
		"mode":                  appointment.Mode,
		"meeting_link":          appointment.MeetingLink,
		"status":                appointment.Status,
		"counter_proposal_date": appointment.CounterProposalDate,
		"counter_mode":          appointment.CounterMode,
		"counter_meeting_link":  appointment.CounterMeetingLink,
		"title":                 appointment.Title,
		"description":           appointment.Description,
		"updated_at":            appointment.UpdatedAt,
	}}

	result, err := repo.Collection.UpdateOne(ctx, query, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *AppointmentMongoRepository) DeleteAppointment(ctx context.Context, filter *models.AppointmentFilter) (bool, error) {
	query, err := buildAppointmentFilter(filter)
	if err != nil {
		return false, err
	}

	result, err := repo.Collection.DeleteOne(ctx, query)
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
