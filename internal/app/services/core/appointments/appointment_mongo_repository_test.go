package appointments

import (
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildAppointmentFilter(t *testing.T) {
	objectID := primitive.NewObjectID()

	t.Run("scoped mutation lookup", func(t *testing.T) {
		query, err := buildAppointmentFilter(&models.AppointmentFilter{
			ID:              objectID.Hex(),
			DoctorID:        "doctor-1",
			ExcludeStatuses: []models.AppointmentStatus{models.AppointmentStatusRejected},
		})
		require.NoError(t, err)
		assert.Equal(t, bson.M{
			"_id":       objectID,
			"doctor_id": "doctor-1",
			"status":    bson.M{"$nin": []models.AppointmentStatus{models.AppointmentStatusRejected}},
		}, query)
	})

	t.Run("status list", func(t *testing.T) {
		query, err := buildAppointmentFilter(&models.AppointmentFilter{
			ParentID: "parent-1",
			Statuses: []models.AppointmentStatus{models.AppointmentStatusPending},
		})
		require.NoError(t, err)
		assert.Equal(t, bson.M{
			"parent_id": "parent-1",
			"status":    bson.M{"$in": []models.AppointmentStatus{models.AppointmentStatusPending}},
		}, query)
	})

	t.Run("empty", func(t *testing.T) {
		query, err := buildAppointmentFilter(nil)
		require.NoError(t, err)
		assert.Empty(t, query)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := buildAppointmentFilter(&models.AppointmentFilter{ID: "not-an-object-id"})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})
}
