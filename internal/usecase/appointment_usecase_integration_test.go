package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/repository"
	"clinic-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The race tests need a real PostgreSQL instance because the engine relies on
// transaction-scoped advisory locks. Set TEST_DATABASE_DSN to run them, e.g.
// "host=localhost user=postgres password=postgres dbname=clinic_test port=5432 sslmode=disable".
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Clinic{},
		&entity.Role{},
		&entity.User{},
		&entity.ProfessionalProfile{},
		&entity.Patient{},
		&entity.AppointmentType{},
		&entity.TreatmentPlan{},
		&entity.TreatmentPlanProcedure{},
		&entity.Appointment{},
		&entity.AuditLog{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

type testFixture struct {
	clinic            *entity.Clinic
	professionalID    uuid.UUID
	patientID         uuid.UUID
	appointmentTypeID uuid.UUID
	usecase           AppointmentUsecase
}

func newTestFixture(t *testing.T, db *gorm.DB, allowParallel bool, parallelLimit int) *testFixture {
	t.Helper()

	clinic := &entity.Clinic{
		ID:                        uuid.New(),
		Name:                      fmt.Sprintf("Test Clinic %s", uuid.New().String()[:8]),
		AllowParallelAppointments: allowParallel,
		ParallelAppointmentsLimit: parallelLimit,
	}
	if err := db.Create(clinic).Error; err != nil {
		t.Fatalf("failed to seed clinic: %v", err)
	}

	role := &entity.Role{RoleName: fmt.Sprintf("professional-%s", uuid.New().String()[:8])}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("failed to seed role: %v", err)
	}

	user := &entity.User{
		ID:       uuid.New(),
		ClinicID: clinic.ID,
		RoleID:   role.ID,
		Email:    fmt.Sprintf("%s@test.local", uuid.New().String()[:8]),
		Password: "irrelevant",
		FullName: "Dr. Test",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	profile := &entity.ProfessionalProfile{
		UserID:      user.ID,
		ClinicID:    clinic.ID,
		WorkingDays: "MONDAY,TUESDAY,WEDNESDAY,THURSDAY,FRIDAY",
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to seed professional profile: %v", err)
	}

	patient := &entity.Patient{
		ID:       uuid.New(),
		ClinicID: clinic.ID,
		FullName: "Test Patient",
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}

	appointmentType := &entity.AppointmentType{
		ID:              uuid.New(),
		ClinicID:        clinic.ID,
		Name:            "Consultation",
		DurationMinutes: 60,
	}
	if err := db.Create(appointmentType).Error; err != nil {
		t.Fatalf("failed to seed appointment type: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	auditLogRepo := repository.NewAuditLogRepository()
	u := NewAppointmentUsecase(
		db,
		log,
		service.NewSchedulingService(),
		repository.NewAppointmentRepository(),
		repository.NewClinicRepository(),
		repository.NewProfessionalRepository(),
		repository.NewTreatmentPlanRepository(),
		service.NewAuditService(log, auditLogRepo),
	)

	return &testFixture{
		clinic:            clinic,
		professionalID:    user.ID,
		patientID:         patient.ID,
		appointmentTypeID: appointmentType.ID,
		usecase:           u,
	}
}

func (f *testFixture) createRequest(date, start, end string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientID:         f.patientID,
		ProfessionalID:    f.professionalID,
		AppointmentTypeID: f.appointmentTypeID,
		Date:              date,
		StartTime:         start,
		EndTime:           end,
	}
}

func TestCreateAppointmentSerialConflict(t *testing.T) {
	db := openTestDB(t)
	f := newTestFixture(t, db, false, 1)
	ctx := context.Background()

	// 2025-03-10 is a Monday
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-10", "09:00", "10:00")); err != nil {
		t.Fatalf("first appointment should succeed: %v", err)
	}

	_, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-10", "09:30", "10:30"))
	var schedErr *service.SchedulingError
	if !errors.As(err, &schedErr) {
		t.Fatalf("overlapping appointment error = %v, want SchedulingError", err)
	}

	// Back to back is always fine
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-10", "10:00", "11:00")); err != nil {
		t.Fatalf("back-to-back appointment should succeed: %v", err)
	}
}

func TestCreateProfessionalThenBookOnWorkingDay(t *testing.T) {
	db := openTestDB(t)
	f := newTestFixture(t, db, false, 1)
	ctx := context.Background()

	role := &entity.Role{ID: entity.RoleIDProfessional, RoleName: entity.RoleProfessional}
	if err := db.Where("id = ?", entity.RoleIDProfessional).FirstOrCreate(role).Error; err != nil {
		t.Fatalf("failed to seed professional role: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	profUC := NewProfessionalUsecase(db, log, repository.NewUserRepository(), repository.NewProfessionalRepository())

	// Weekdays arrive lowercase from the API
	created, err := profUC.CreateProfessional(ctx, f.clinic.ID, &dto.CreateProfessionalRequest{
		Email:       fmt.Sprintf("%s@test.local", uuid.New().String()[:8]),
		Password:    "secret-password",
		FullName:    "Dr. Created",
		WorkingDays: []string{"monday", "tuesday"},
	})
	if err != nil {
		t.Fatalf("failed to create professional: %v", err)
	}

	req := f.createRequest("2025-03-10", "09:00", "10:00")
	req.ProfessionalID = created.ID
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, req); err != nil {
		t.Fatalf("booking on a configured working day should succeed: %v", err)
	}

	req = f.createRequest("2025-03-09", "09:00", "10:00")
	req.ProfessionalID = created.ID
	_, err = f.usecase.CreateAppointment(ctx, f.clinic.ID, req)
	var schedErr *service.SchedulingError
	if !errors.As(err, &schedErr) {
		t.Fatalf("booking on a Sunday error = %v, want SchedulingError", err)
	}
}

func TestCreateAppointmentAtWindowBoundary(t *testing.T) {
	db := openTestDB(t)
	f := newTestFixture(t, db, false, 1)
	ctx := context.Background()

	err := db.Model(&entity.ProfessionalProfile{}).
		Where("user_id = ?", f.professionalID).
		Updates(map[string]interface{}{
			"schedule_start_hour": "08:00",
			"schedule_end_hour":   "18:00",
		}).Error
	if err != nil {
		t.Fatalf("failed to set schedule window: %v", err)
	}

	// The window bounds are inclusive, even after the stored time values
	// round-trip through the database.
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-19", "08:00", "09:00")); err != nil {
		t.Fatalf("booking at the exact window start should succeed: %v", err)
	}
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-19", "17:00", "18:00")); err != nil {
		t.Fatalf("booking ending at the exact window end should succeed: %v", err)
	}

	_, err = f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-19", "07:30", "08:30"))
	var schedErr *service.SchedulingError
	if !errors.As(err, &schedErr) {
		t.Fatalf("booking before the window error = %v, want SchedulingError", err)
	}
}

func TestCreateAppointmentConcurrentRace(t *testing.T) {
	db := openTestDB(t)
	f := newTestFixture(t, db, false, 1)

	const attempts = 8
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.usecase.CreateAppointment(context.Background(), f.clinic.ID,
				f.createRequest("2025-03-11", "14:00", "15:00"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, conflicted := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			var schedErr *service.SchedulingError
			if !errors.As(err, &schedErr) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			conflicted++
		}
	}

	if succeeded != 1 {
		t.Errorf("exactly one concurrent create should win, got %d", succeeded)
	}
	if conflicted != attempts-1 {
		t.Errorf("conflicted = %d, want %d", conflicted, attempts-1)
	}
}

func TestCreateAppointmentParallelPolicy(t *testing.T) {
	db := openTestDB(t)
	f := newTestFixture(t, db, true, 2)
	ctx := context.Background()

	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-12", "09:00", "10:00")); err != nil {
		t.Fatalf("first parallel appointment should succeed: %v", err)
	}
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-12", "09:00", "10:00")); err != nil {
		t.Fatalf("second parallel appointment should succeed under limit 2: %v", err)
	}

	_, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, f.createRequest("2025-03-12", "09:30", "10:30"))
	var schedErr *service.SchedulingError
	if !errors.As(err, &schedErr) {
		t.Fatalf("third overlapping appointment error = %v, want SchedulingError", err)
	}
}

func TestSessionQuotaAndRecount(t *testing.T) {
	db := openTestDB(t)
	f := newTestFixture(t, db, false, 1)
	ctx := context.Background()

	plan := &entity.TreatmentPlan{
		ID:        uuid.New(),
		ClinicID:  f.clinic.ID,
		PatientID: f.patientID,
		Title:     "Physio block",
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to seed treatment plan: %v", err)
	}
	procedure := &entity.TreatmentPlanProcedure{
		ID:                 uuid.New(),
		TreatmentPlanID:    plan.ID,
		Name:               "Physiotherapy session",
		ContractedSessions: 2,
	}
	if err := db.Create(procedure).Error; err != nil {
		t.Fatalf("failed to seed procedure: %v", err)
	}

	linkedRequest := func(date, start, end string) *dto.CreateAppointmentRequest {
		req := f.createRequest(date, start, end)
		req.TreatmentPlanID = &plan.ID
		req.TreatmentPlanProcedureID = &procedure.ID
		return req
	}

	first, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, linkedRequest("2025-03-13", "09:00", "10:00"))
	if err != nil {
		t.Fatalf("first linked appointment should succeed: %v", err)
	}
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, linkedRequest("2025-03-14", "09:00", "10:00")); err != nil {
		t.Fatalf("second linked appointment should succeed: %v", err)
	}

	_, err = f.usecase.CreateAppointment(ctx, f.clinic.ID, linkedRequest("2025-03-17", "09:00", "10:00"))
	var limitErr *service.SessionLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("over-quota appointment error = %v, want SessionLimitError", err)
	}
	if limitErr.ContractedSessions != 2 || len(limitErr.ScheduledDates) != 2 {
		t.Errorf("SessionLimitError = %+v, want 2 contracted and 2 dates", limitErr)
	}

	// Completing one appointment resyncs the counter from scratch
	if _, err := f.usecase.UpdateStatus(ctx, f.clinic.ID, first.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusCompleted)}); err != nil {
		t.Fatalf("status change should succeed: %v", err)
	}

	var reloaded entity.TreatmentPlanProcedure
	if err := db.First(&reloaded, "id = ?", procedure.ID).Error; err != nil {
		t.Fatalf("failed to reload procedure: %v", err)
	}
	if reloaded.CompletedSessions != 1 {
		t.Errorf("CompletedSessions = %d, want 1", reloaded.CompletedSessions)
	}

	// Canceling a linked appointment frees its quota slot
	if _, err := f.usecase.UpdateStatus(ctx, f.clinic.ID, first.ID,
		&dto.UpdateAppointmentStatusRequest{Status: string(entity.AppointmentStatusCanceled)}); err != nil {
		t.Fatalf("cancel should succeed: %v", err)
	}
	if _, err := f.usecase.CreateAppointment(ctx, f.clinic.ID, linkedRequest("2025-03-18", "09:00", "10:00")); err != nil {
		t.Fatalf("freed quota slot should allow a new linked appointment: %v", err)
	}
}
