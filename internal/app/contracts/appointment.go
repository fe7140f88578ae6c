package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindOne(ctx context.Context, filter *models.AppointmentFilter) (*models.Appointment, error)
	FindAll(ctx context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error)
	// UpdateAppointment writes appointment when filter still matches and
	// reports whether a document was updated.
	UpdateAppointment(ctx context.Context, appointment *models.Appointment, filter *models.AppointmentFilter) (bool, error)
	DeleteAppointment(ctx context.Context, filter *models.AppointmentFilter) (bool, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error)
	FindMine(ctx context.Context, session *models.Session, query *requests.AppointmentQuery) ([]*responses.AppointmentSummary, error)
	FindSchedule(ctx context.Context, session *models.Session) ([]*responses.AppointmentSchedule, error)
	FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentDetail, error)
	UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error
	CounterAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CounterAppointment) (*responses.CounterAppointment, error)
	AcceptAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error)
	RejectAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error)
}
