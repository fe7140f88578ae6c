package appointments

import (
	"context"
	"mamacare-service/internal/app/models"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
}

func newMemoryAppointmentRepository() *memoryAppointmentRepository {
	return &memoryAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func matchesFilter(appointment *models.Appointment, filter *models.AppointmentFilter) bool {
	if filter == nil {
		return true
	}
	if filter.ID != "" && appointment.ID != filter.ID {
		return false
	}
	if filter.ParentID != "" && appointment.ParentID != filter.ParentID {
		return false
	}
	if filter.DoctorID != "" && appointment.DoctorID != filter.DoctorID {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, appointment.Status) {
		return false
	}
	if containsStatus(filter.ExcludeStatuses, appointment.Status) {
		return false
	}
	return true
}

func containsStatus(statuses []models.AppointmentStatus, status models.AppointmentStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func clone(appointment *models.Appointment) *models.Appointment {
	copied := *appointment
	return &copied
}

func (r *memoryAppointmentRepository) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := clone(appointment)
	stored.ID = primitive.NewObjectID().Hex()
	r.appointments[stored.ID] = stored
	return stored.ID, nil
}

func (r *memoryAppointmentRepository) FindOne(_ context.Context, filter *models.AppointmentFilter) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, appointment := range r.appointments {
		if matchesFilter(appointment, filter) {
			return clone(appointment), nil
		}
	}
	return nil, nil
}

func (r *memoryAppointmentRepository) FindAll(_ context.Context, filter *models.AppointmentFilter) ([]*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	found := make([]*models.Appointment, 0)
	for _, appointment := range r.appointments {
		if matchesFilter(appointment, filter) {
			found = append(found, clone(appointment))
		}
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].AppointmentDate.After(found[j].AppointmentDate)
	})
	return found, nil
}

func (r *memoryAppointmentRepository) UpdateAppointment(_ context.Context, appointment *models.Appointment, filter *models.AppointmentFilter) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.appointments[appointment.ID]
	if !ok || !matchesFilter(stored, filter) {
		return false, nil
	}
	updated := clone(appointment)
	updated.ParentID = stored.ParentID
	updated.CreatedAt = stored.CreatedAt
	r.appointments[appointment.ID] = updated
	return true, nil
}

func (r *memoryAppointmentRepository) DeleteAppointment(_ context.Context, filter *models.AppointmentFilter) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, appointment := range r.appointments {
		if matchesFilter(appointment, filter) {
			delete(r.appointments, id)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryAppointmentRepository) get(id string) *models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment, ok := r.appointments[id]; ok {
		return clone(appointment)
	}
	return nil
}

func (r *memoryAppointmentRepository) put(appointment *models.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments[appointment.ID] = clone(appointment)
}

type memoryUserRepository struct {
	users map[string]*models.User
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID().Hex()
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	return r.users[userID], nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByIDs(_ context.Context, userIDs []string) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for _, id := range userIDs {
		if user, ok := r.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *memoryUserRepository) FindByRole(_ context.Context, role string) ([]*models.User, error) {
	users := make([]*models.User, 0)
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepository) DeleteByID(_ context.Context, userID string) error {
	delete(r.users, userID)
	return nil
}

type memoryChildRepository struct {
	children map[string]*models.Child
}

func (r *memoryChildRepository) CreateChild(_ context.Context, child *models.Child) (string, error) {
	child.ID = primitive.NewObjectID().Hex()
	r.children[child.ID] = child
	return child.ID, nil
}

func (r *memoryChildRepository) FindByID(_ context.Context, childID string) (*models.Child, error) {
	return r.children[childID], nil
}

func (r *memoryChildRepository) FindByParentID(_ context.Context, parentID string) ([]*models.Child, error) {
	children := make([]*models.Child, 0)
	for _, child := range r.children {
		if child.ParentID == parentID {
			children = append(children, child)
		}
	}
	return children, nil
}

func (r *memoryChildRepository) FindByIDs(_ context.Context, childIDs []string) ([]*models.Child, error) {
	children := make([]*models.Child, 0)
	for _, id := range childIDs {
		if child, ok := r.children[id]; ok {
			children = append(children, child)
		}
	}
	return children, nil
}

func (r *memoryChildRepository) DeleteByParentID(_ context.Context, parentID string) error {
	for id, child := range r.children {
		if child.ParentID == parentID {
			delete(r.children, id)
		}
	}
	return nil
}

type memoryLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func newMemoryLocker() *memoryLocker {
	return &memoryLocker{held: make(map[string]string)}
}

func (l *memoryLocker) TryLock(_ context.Context, key string, _ time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return false, "", nil
	}
	value := primitive.NewObjectID().Hex()
	l.held[key] = value
	return true, value, nil
}

func (l *memoryLocker) Unlock(_ context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == lockValue {
		delete(l.held, key)
	}
	return nil
}
