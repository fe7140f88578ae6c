package appointments

import (
	"context"
	"fmt"
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/dto/responses"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	ChildRepository       contracts.ChildRepository
	LockService           contracts.LockerService
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	childRepository contracts.ChildRepository,
	lockService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		ChildRepository:       childRepository,
		LockService:           lockService,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)

	// Only parents book appointments
	if PartyOf(session) != PartyParent {
		return nil, exceptions.ErrOnlyParentCanModify(nil, session.Role, "create")
	}

	// Online appointments need a link to join
	mode := models.AppointmentMode(request.Mode)
	if mode == models.AppointmentModeOnline && request.MeetingLink == nil {
		return nil, exceptions.ErrMeetingLinkRequired(nil)
	}

	if err := uc.ensureDoctor(ctx, request.DoctorID); err != nil {
		return nil, err
	}
	if err := uc.ensureOwnChild(ctx, session.UserID, request.ChildID); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ParentID:        session.UserID,
		DoctorID:        request.DoctorID,
		ChildID:         request.ChildID,
		AppointmentDate: request.AppointmentDate.UTC(),
		Mode:            mode,
		MeetingLink:     request.MeetingLink,
		Status:          models.AppointmentStatusPending,
		Title:           request.Title,
		Description:     request.Description,
	}
	appointment.NormalizeMeetingLink()
	appointment.Touch(uc.now())

	var err error
	appointment.ID, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID))

	uc.emit(requestID, &models.AppointmentEvent{
		Event:       constvars.EventAppointmentCreated,
		Action:      constvars.EventActionCreated,
		Appointment: appointment,
		Title:       constvars.EventTitleNewAppointment,
		To:          appointment.DoctorID,
	})
	return appointment, nil
}

func (uc *appointmentUsecase) FindMine(ctx context.Context, session *models.Session, query *requests.AppointmentQuery) ([]*responses.AppointmentSummary, error) {
	filter := scopeFilter(session)
	if query != nil && query.Status != "" {
		filter.Statuses = []models.AppointmentStatus{models.AppointmentStatus(query.Status)}
	}

	appointments, err := uc.AppointmentRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	doctorIDs := make([]string, 0, len(appointments))
	childIDs := make([]string, 0, len(appointments))
	for _, appointment := range appointments {
		doctorIDs = append(doctorIDs, appointment.DoctorID)
		childIDs = append(childIDs, appointment.ChildID)
	}

	doctors, err := uc.UserRepository.FindByIDs(ctx, uniqueIDs(doctorIDs))
	if err != nil {
		return nil, err
	}
	children, err := uc.ChildRepository.FindByIDs(ctx, uniqueIDs(childIDs))
	if err != nil {
		return nil, err
	}

	doctorsByID := make(map[string]*models.User, len(doctors))
	for _, doctor := range doctors {
		doctorsByID[doctor.ID] = doctor
	}
	childrenByID := make(map[string]*models.Child, len(children))
	for _, child := range children {
		childrenByID[child.ID] = child
	}

	summaries := make([]*responses.AppointmentSummary, 0, len(appointments))
	for _, appointment := range appointments {
		summaries = append(summaries, &responses.AppointmentSummary{
			Appointment: appointment,
			Doctor:      responses.NewUserSummary(doctorsByID[appointment.DoctorID]),
			Child:       childrenByID[appointment.ChildID],
		})
	}
	return summaries, nil
}

func (uc *appointmentUsecase) FindSchedule(ctx context.Context, session *models.Session) ([]*responses.AppointmentSchedule, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx, scopeFilter(session))
	if err != nil {
		return nil, err
	}

	schedule := make([]*responses.AppointmentSchedule, 0, len(appointments))
	for _, appointment := range appointments {
		date := appointment.AppointmentDate.UTC()
		schedule = append(schedule, &responses.AppointmentSchedule{
			ID:     appointment.ID,
			Date:   date.Format(constvars.ScheduleDateFmt),
			Time:   date.Format(constvars.ScheduleTimeFmt),
			Mode:   appointment.Mode,
			Status: appointment.Status,
			Title:  appointment.Title,
		})
	}
	return schedule, nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentDetail, error) {
	filter := scopeFilter(session)
	filter.ID = appointmentID

	appointment, err := uc.AppointmentRepository.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	parent, err := uc.UserRepository.FindByID(ctx, appointment.ParentID)
	if err != nil {
		return nil, err
	}
	doctor, err := uc.UserRepository.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}
	child, err := uc.ChildRepository.FindByID(ctx, appointment.ChildID)
	if err != nil {
		return nil, err
	}

	return &responses.AppointmentDetail{
		Appointment: appointment,
		Parent:      responses.NewUserSummary(parent),
		Doctor:      responses.NewUserSummary(doctor),
		Child:       child,
	}, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*models.Appointment, error) {
	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	var updated *models.Appointment
	err := uc.withAppointment(ctx, session, appointmentID, OperationUpdate, func(appointment *models.Appointment, party Party) error {
		if request.DoctorID != nil && *request.DoctorID != appointment.DoctorID {
			if err := uc.ensureDoctor(ctx, *request.DoctorID); err != nil {
				return err
			}
			appointment.DoctorID = *request.DoctorID
		}
		if request.ChildID != nil && *request.ChildID != appointment.ChildID {
			if err := uc.ensureOwnChild(ctx, session.UserID, *request.ChildID); err != nil {
				return err
			}
			appointment.ChildID = *request.ChildID
		}
		if request.AppointmentDate != nil {
			appointment.AppointmentDate = request.AppointmentDate.UTC()
		}
		if request.Mode != nil {
			appointment.Mode = models.AppointmentMode(*request.Mode)
		}
		if request.MeetingLink != nil {
			link := strings.TrimSpace(*request.MeetingLink)
			appointment.MeetingLink = &link
			if link == "" {
				appointment.MeetingLink = nil
			}
		}
		if request.Title != nil {
			appointment.Title = strings.TrimSpace(*request.Title)
		}
		if request.Description != nil {
			appointment.Description = strings.TrimSpace(*request.Description)
		}

		appointment.NormalizeMeetingLink()
		if !appointment.HasConsistentMeetingLink() {
			return exceptions.ErrMeetingLinkRequired(nil)
		}

		if err := uc.save(ctx, appointment, models.AppointmentStatusPending); err != nil {
			return err
		}
		updated = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	return uc.withAppointment(ctx, session, appointmentID, OperationDelete, func(appointment *models.Appointment, party Party) error {
		deleted, err := uc.AppointmentRepository.DeleteAppointment(ctx, &models.AppointmentFilter{
			ID:       appointment.ID,
			ParentID: appointment.ParentID,
			Statuses: []models.AppointmentStatus{appointment.Status},
		})
		if err != nil {
			return err
		}
		if !deleted {
			return exceptions.ErrAppointmentLocked(nil)
		}

		uc.Log.Info("appointmentUsecase.DeleteAppointment succeeded",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID))
		return nil
	})
}

// CounterAppointment records a proposed schedule from either party. Fields
// left out of the request keep the current value.
func (uc *appointmentUsecase) CounterAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CounterAppointment) (*responses.CounterAppointment, error) {
	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	var response *responses.CounterAppointment
	err := uc.withAppointment(ctx, session, appointmentID, OperationCounter, func(appointment *models.Appointment, party Party) error {
		previousStatus := appointment.Status

		proposedDate := appointment.AppointmentDate
		if request.CounterProposalDate != nil {
			proposedDate = *request.CounterProposalDate
		}
		clock := ""
		if request.CounterProposalTime != nil {
			clock = *request.CounterProposalTime
		}
		proposedDate, err := utils.CombineDateAndTime(proposedDate, clock)
		if err != nil {
			return err
		}

		proposedMode := appointment.Mode
		if request.CounterMode != nil {
			proposedMode = models.AppointmentMode(*request.CounterMode)
		}

		var proposedLink *string
		if proposedMode == models.AppointmentModeOnline {
			switch {
			case request.CounterMeetingLink != nil && strings.TrimSpace(*request.CounterMeetingLink) != "":
				link := strings.TrimSpace(*request.CounterMeetingLink)
				proposedLink = &link
			case appointment.MeetingLink != nil:
				proposedLink = appointment.MeetingLink
			default:
				return exceptions.ErrMeetingLinkRequired(nil)
			}
		}

		// Compare the resolved proposal, not the fields that were sent.
		title := BuildCounterTitle(
			!sameCalendarDate(proposedDate, appointment.AppointmentDate),
			proposedMode != appointment.Mode,
			clockOf(proposedDate) != clockOf(appointment.AppointmentDate),
		)

		appointment.Status = models.AppointmentStatusCountered
		appointment.CounterProposalDate = &proposedDate
		appointment.CounterMode = &proposedMode
		appointment.CounterMeetingLink = proposedLink

		if err := uc.save(ctx, appointment, previousStatus); err != nil {
			return err
		}

		uc.emit(utils.GetRequestID(ctx), &models.AppointmentEvent{
			Event:       constvars.EventAppointmentUpdated,
			Action:      constvars.EventActionCountered,
			Appointment: appointment,
			Title:       title,
			To:          Counterparty(party, appointment),
		})
		response = &responses.CounterAppointment{Appointment: appointment, Title: title}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// AcceptAppointment confirms a pending request, or agrees to a counter
// proposal in which case the proposed schedule replaces the current one.
func (uc *appointmentUsecase) AcceptAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	return uc.decide(ctx, session, appointmentID, OperationAccept)
}

func (uc *appointmentUsecase) RejectAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	return uc.decide(ctx, session, appointmentID, OperationReject)
}

func (uc *appointmentUsecase) decide(ctx context.Context, session *models.Session, appointmentID string, operation Operation) (*models.Appointment, error) {
	var decided *models.Appointment
	err := uc.withAppointment(ctx, session, appointmentID, operation, func(appointment *models.Appointment, party Party) error {
		previousStatus := appointment.Status
		next, err := NextStatus(party, previousStatus, operation)
		if err != nil {
			return err
		}

		if operation == OperationAccept && previousStatus == models.AppointmentStatusCountered {
			appointment.AdoptCounterProposal()
		}
		appointment.ClearCounterProposal()
		appointment.Status = next

		if !appointment.HasConsistentMeetingLink() {
			return exceptions.ErrMeetingLinkRequired(nil)
		}
		if err := uc.save(ctx, appointment, previousStatus); err != nil {
			return err
		}

		event := &models.AppointmentEvent{
			Event:       constvars.EventAppointmentAccepted,
			Action:      constvars.EventActionAccepted,
			Appointment: appointment,
			Title:       constvars.EventTitleAppointmentAccepted,
			To:          Counterparty(party, appointment),
		}
		if operation == OperationReject {
			event.Event = constvars.EventAppointmentRejected
			event.Action = constvars.EventActionRejected
			event.Title = constvars.EventTitleAppointmentRejected
		}
		uc.emit(utils.GetRequestID(ctx), event)

		decided = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}

// withAppointment serialises mutations of one appointment through a redis
// lock, loads it inside the caller's scope and checks the transition before
// handing it to mutate.
func (uc *appointmentUsecase) withAppointment(ctx context.Context, session *models.Session, appointmentID string, operation Operation, mutate func(appointment *models.Appointment, party Party) error) error {
	requestID := utils.GetRequestID(ctx)
	party := PartyOf(session)

	uc.Log.Info("appointmentUsecase.withAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingUserRoleKey, session.Role),
		zap.String("operation", string(operation)))

	lockKey := fmt.Sprintf(constvars.AppointmentLockKeyFormat, appointmentID)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, uc.lockTTL())
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrAppointmentLocked(nil)
	}
	defer func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.LockService.Unlock(unlockCtx, lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.withAppointment failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err))
		}
	}()

	filter := scopeFilter(session)
	filter.ID = appointmentID
	if operation == OperationUpdate {
		filter.Statuses = []models.AppointmentStatus{models.AppointmentStatusPending}
	} else {
		filter.ExcludeStatuses = []models.AppointmentStatus{models.AppointmentStatusRejected}
	}

	appointment, err := uc.AppointmentRepository.FindOne(ctx, filter)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}

	if _, err := NextStatus(party, appointment.Status, operation); err != nil {
		uc.Log.Info("appointmentUsecase.withAppointment transition refused",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingStatusKey, string(appointment.Status)),
			zap.Error(err))
		return err
	}

	return mutate(appointment, party)
}

// save writes appointment only if it still holds expectedStatus.
func (uc *appointmentUsecase) save(ctx context.Context, appointment *models.Appointment, expectedStatus models.AppointmentStatus) error {
	appointment.Touch(uc.now())

	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment, &models.AppointmentFilter{
		ID:       appointment.ID,
		Statuses: []models.AppointmentStatus{expectedStatus},
	})
	if err != nil {
		return err
	}
	if !updated {
		return exceptions.ErrAppointmentLocked(nil)
	}

	uc.Log.Info("appointmentUsecase.save succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String(constvars.LoggingStatusKey, string(appointment.Status)))
	return nil
}

// emit publishes in the background. Failures are logged and dropped.
func (uc *appointmentUsecase) emit(requestID string, event *models.AppointmentEvent) {
	snapshot := *event.Appointment
	event.Appointment = &snapshot
	event.OccurredAt = uc.now().UTC()

	timeout := time.Duration(uc.InternalConfig.App.EventPublishTimeoutInSecond) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := uc.EventPublisher.Publish(ctx, event); err != nil {
			uc.Log.Error("appointmentUsecase.emit failed to publish event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventNameKey, event.Event),
				zap.String(constvars.LoggingRecipientKey, event.To),
				zap.Error(err))
		}
	}()
}

func (uc *appointmentUsecase) lockTTL() time.Duration {
	ttl := time.Duration(uc.InternalConfig.App.AppointmentLockInSeconds) * time.Second
	if ttl <= 0 {
		return 10 * time.Second
	}
	return ttl
}

func (uc *appointmentUsecase) ensureDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return exceptions.ErrDoctorNotExist(nil)
	}
	return nil
}

func (uc *appointmentUsecase) ensureOwnChild(ctx context.Context, parentID, childID string) error {
	child, err := uc.ChildRepository.FindByID(ctx, childID)
	if err != nil {
		return err
	}
	if child == nil || child.ParentID != parentID {
		return exceptions.ErrChildNotExist(nil)
	}
	return nil
}

// scopeFilter limits lookups to appointments the caller takes part in.
func scopeFilter(session *models.Session) *models.AppointmentFilter {
	if PartyOf(session) == PartyDoctor {
		return &models.AppointmentFilter{DoctorID: session.UserID}
	}
	return &models.AppointmentFilter{ParentID: session.UserID}
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
