package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-ops-backend/internal/converter"
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/delivery/http/middleware"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/domain/repository"
	"clinic-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrClinicNotFound       = errors.New("clinic not found")
	ErrProfessionalNotFound = errors.New("professional not found")
	ErrProcedureNotFound    = errors.New("treatment plan procedure not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidStatus        = errors.New("invalid appointment status")
)

// Statuses in which an appointment can no longer be edited through the
// regular update flow. Blocking CONFIRMED and WAITING alongside the terminal
// statuses is the inherited product rule; see DESIGN.md before narrowing it.
var nonEditableStatuses = map[entity.AppointmentStatus]bool{
	entity.AppointmentStatusCanceled:  true,
	entity.AppointmentStatusCompleted: true,
	entity.AppointmentStatusConfirmed: true,
	entity.AppointmentStatusWaiting:   true,
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, clinicID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, clinicID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, clinicID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	scheduler        *service.SchedulingService
	appointmentRepo  repository.AppointmentRepository
	clinicRepo       repository.ClinicRepository
	professionalRepo repository.ProfessionalRepository
	planRepo         repository.TreatmentPlanRepository
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduler *service.SchedulingService,
	appointmentRepo repository.AppointmentRepository,
	clinicRepo repository.ClinicRepository,
	professionalRepo repository.ProfessionalRepository,
	planRepo repository.TreatmentPlanRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		scheduler:        scheduler,
		appointmentRepo:  appointmentRepo,
		clinicRepo:       clinicRepo,
		professionalRepo: professionalRepo,
		planRepo:         planRepo,
		auditService:     auditService,
	}
}

// CreateAppointment runs the full admissibility sequence and persists the
// appointment in one transaction.
//
// Flow:
// 1. Load clinic policy and professional calendar rules
// 2. Normalize the requested date, validate the time interval
// 3. Calendar rules (working day, schedule window)
// 4. Overlap count over the full day + concurrency policy
// 5. Contracted-session quota, when linked to a treatment-plan procedure
// 6. Insert; an exclusion-constraint rejection from the store maps back to
//    the same scheduling error the application check would have produced
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, clinicID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, start, end, err := parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	clinic, err := u.clinicRepo.FindByID(tx, clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}

	professional, err := u.professionalRepo.FindByClinicAndUserID(tx, clinicID, req.ProfessionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", req.ProfessionalID, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	if err := u.checkSlot(tx, clinic, professional, date, start, end, uuid.Nil); err != nil {
		return nil, err
	}

	if req.TreatmentPlanProcedureID != nil {
		if err := u.checkQuota(tx, *req.TreatmentPlanProcedureID); err != nil {
			return nil, err
		}
	}

	appointment := &entity.Appointment{
		ClinicID:                 clinicID,
		PatientID:                req.PatientID,
		ProfessionalID:           req.ProfessionalID,
		AppointmentTypeID:        req.AppointmentTypeID,
		Date:                     date,
		StartTime:                start,
		EndTime:                  end,
		Status:                   entity.AppointmentStatusScheduled,
		TreatmentPlanID:          req.TreatmentPlanID,
		TreatmentPlanProcedureID: req.TreatmentPlanProcedureID,
		Notes:                    req.Notes,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isSlotConstraintError(err) {
			return nil, service.NewSchedulingError("this time slot is already taken")
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogAction(ctx, tx, clinicID, actorID, entity.AuditActionAppointmentCreate,
		"appointment", appointment.ID.String(), nil, appointmentAuditValue(appointment))

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment creation: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, professional=%s, date=%s %s-%s",
		appointment.ID, appointment.ProfessionalID, req.Date, start, end)
	return converter.AppointmentToResponse(full), nil
}

// UpdateAppointment applies a partial update. When the professional, date or
// either time changes, the target slot is re-validated with the appointment's
// own id excluded from the overlap count.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByClinicAndID(tx, clinicID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if nonEditableStatuses[appointment.Status] {
		return nil, service.NewSchedulingError("cannot edit an appointment in status %s",
			strings.ToLower(string(appointment.Status)))
	}

	oldValue := appointmentAuditValue(appointment)

	// Effective target values: anything not supplied falls back to the
	// appointment's current value.
	targetProfessional := appointment.ProfessionalID
	if req.ProfessionalID != nil {
		targetProfessional = *req.ProfessionalID
	}
	targetDate := appointment.Date
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		targetDate = entity.NormalizeDate(parsed)
	}
	targetStart := appointment.StartTime
	if req.StartTime != "" {
		if targetStart, err = entity.ParseTimeOfDay(req.StartTime); err != nil {
			return nil, err
		}
	}
	targetEnd := appointment.EndTime
	if req.EndTime != "" {
		if targetEnd, err = entity.ParseTimeOfDay(req.EndTime); err != nil {
			return nil, err
		}
	}
	if !targetStart.Before(targetEnd) {
		return nil, service.NewSchedulingError("start time must be before end time")
	}

	rescheduled := targetProfessional != appointment.ProfessionalID ||
		!targetDate.Equal(appointment.Date) ||
		targetStart != appointment.StartTime ||
		targetEnd != appointment.EndTime

	if rescheduled {
		clinic, err := u.clinicRepo.FindByID(tx, clinicID)
		if err != nil {
			return nil, err
		}
		if clinic == nil {
			return nil, ErrClinicNotFound
		}

		professional, err := u.professionalRepo.FindByClinicAndUserID(tx, clinicID, targetProfessional)
		if err != nil {
			return nil, err
		}
		if professional == nil {
			return nil, ErrProfessionalNotFound
		}

		if err := u.checkSlot(tx, clinic, professional, targetDate, targetStart, targetEnd, appointment.ID); err != nil {
			return nil, err
		}
	}

	appointment.ProfessionalID = targetProfessional
	appointment.Date = targetDate
	appointment.StartTime = targetStart
	appointment.EndTime = targetEnd
	if req.PatientID != nil {
		appointment.PatientID = *req.PatientID
	}
	if req.AppointmentTypeID != nil {
		appointment.AppointmentTypeID = *req.AppointmentTypeID
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isSlotConstraintError(err) {
			return nil, service.NewSchedulingError("this time slot is already taken")
		}
		u.log.Warnf("Failed to update appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if rescheduled {
		actorID := actorFromContext(ctx)
		u.auditService.LogAction(ctx, tx, clinicID, actorID, entity.AuditActionAppointmentReschedule,
			"appointment", appointment.ID.String(), oldValue, appointmentAuditValue(appointment))
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit appointment update: %+v", err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// UpdateStatus sets the appointment status unconditionally (any transition is
// legal) and resyncs the completed-session counter of a linked procedure.
// Calendar and overlap checks are deliberately skipped here.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, clinicID, appointmentID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	status := entity.AppointmentStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByClinicAndID(tx, clinicID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	previousStatus := appointment.Status
	appointment.Status = status

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status %s: %+v", appointmentID, err)
		return nil, err
	}

	if appointment.LinkedToProcedure() {
		if err := u.recomputeCompletedSessions(tx, *appointment.TreatmentPlanProcedureID); err != nil {
			return nil, err
		}
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogAction(ctx, tx, clinicID, actorID, entity.AuditActionAppointmentStatusChange,
		"appointment", appointment.ID.String(),
		entity.JSON{"status": string(previousStatus)}, entity.JSON{"status": string(status)})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit status change: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment status changed: id=%s, %s -> %s", appointmentID, previousStatus, status)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByClinicAndID(u.db.WithContext(ctx), clinicID, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, clinicID uuid.UUID, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByClinic(u.db.WithContext(ctx), clinicID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// checkSlot runs calendar rules, the day's overlap count and the clinic
// concurrency policy against a candidate slot. It takes the professional/day
// advisory lock first so the count and the following insert form one
// serialized unit against competing requests.
func (u *appointmentUsecase) checkSlot(tx *gorm.DB, clinic *entity.Clinic, professional *entity.ProfessionalProfile, date time.Time, start, end entity.TimeOfDay, excludeID uuid.UUID) error {
	if err := u.scheduler.CheckCalendar(professional, date, start, end); err != nil {
		return err
	}

	if err := u.appointmentRepo.LockProfessionalDay(tx, professional.UserID, date); err != nil {
		u.log.Warnf("Failed to lock professional day: %+v", err)
		return err
	}

	dayAppointments, err := u.appointmentRepo.FindForProfessionalOnDay(tx, professional.UserID, date)
	if err != nil {
		u.log.Warnf("Failed to load day appointments: %+v", err)
		return err
	}

	overlaps := u.scheduler.CountOverlaps(dayAppointments, start, end, excludeID)
	return u.scheduler.CheckPolicy(clinic, overlaps)
}

// checkQuota enforces the contracted-session budget for a procedure under its
// advisory lock. Only called on creation; reschedules keep their session.
func (u *appointmentUsecase) checkQuota(tx *gorm.DB, procedureID uuid.UUID) error {
	if err := u.appointmentRepo.LockProcedure(tx, procedureID); err != nil {
		u.log.Warnf("Failed to lock procedure: %+v", err)
		return err
	}

	procedure, err := u.planRepo.FindProcedureByID(tx, procedureID)
	if err != nil {
		return err
	}
	if procedure == nil {
		return ErrProcedureNotFound
	}

	linked, err := u.appointmentRepo.FindActiveByProcedure(tx, procedureID)
	if err != nil {
		return err
	}

	return u.scheduler.CheckQuota(procedure, linked)
}

// recomputeCompletedSessions overwrites the cached counter with a fresh count
// of COMPLETED appointments. Idempotent: running it twice without an
// intervening status change yields the same value.
func (u *appointmentUsecase) recomputeCompletedSessions(tx *gorm.DB, procedureID uuid.UUID) error {
	if err := u.appointmentRepo.LockProcedure(tx, procedureID); err != nil {
		return err
	}

	procedure, err := u.planRepo.FindProcedureByID(tx, procedureID)
	if err != nil {
		return err
	}
	if procedure == nil {
		return ErrProcedureNotFound
	}

	completed, err := u.appointmentRepo.CountCompletedByProcedure(tx, procedureID)
	if err != nil {
		return err
	}

	return u.planRepo.UpdateCompletedSessions(tx, procedureID, int(completed))
}

// parseSlot validates and normalizes a date + interval triple.
func parseSlot(dateStr, startStr, endStr string) (time.Time, entity.TimeOfDay, entity.TimeOfDay, error) {
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, "", "", ErrInvalidDateFormat
	}
	date := entity.NormalizeDate(parsed)

	start, err := entity.ParseTimeOfDay(startStr)
	if err != nil {
		return time.Time{}, "", "", err
	}
	end, err := entity.ParseTimeOfDay(endStr)
	if err != nil {
		return time.Time{}, "", "", err
	}
	if !start.Before(end) {
		return time.Time{}, "", "", service.NewSchedulingError("start time must be before end time")
	}

	return date, start, end, nil
}

func actorFromContext(ctx context.Context) *uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}

func appointmentAuditValue(a *entity.Appointment) entity.JSON {
	return entity.JSON{
		"professional_id": a.ProfessionalID.String(),
		"patient_id":      a.PatientID.String(),
		"date":            a.Date.Format("2006-01-02"),
		"start_time":      a.StartTime.String(),
		"end_time":        a.EndTime.String(),
		"status":          string(a.Status),
	}
}

// isSlotConstraintError reports whether err is a store-level rejection of a
// conflicting slot (exclusion or unique violation). These passed the
// application-level check but lost the race at commit, so they surface as the
// same scheduling error.
func isSlotConstraintError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 = exclusion_violation, 23505 = unique_violation
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			return strings.Contains(strings.ToLower(pgErr.ConstraintName), "appointment")
		}
	}
	return false
}
