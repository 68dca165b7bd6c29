package usecase

import (
	"context"

	"clinic-ops-backend/internal/converter"
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/domain/repository"
	"clinic-ops-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ClinicUsecase interface {
	GetSettings(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error)
	UpdateSettings(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicSettingsRequest) (*dto.ClinicResponse, error)
}

type clinicUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
}

func NewClinicUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
) ClinicUsecase {
	return &clinicUsecase{
		db:           db,
		log:          log,
		clinicRepo:   clinicRepo,
		auditService: auditService,
	}
}

func (u *clinicUsecase) GetSettings(ctx context.Context, clinicID uuid.UUID) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.FindByID(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to find clinic %s: %+v", clinicID, err)
		return nil, err
	}
	if clinic == nil {
		return nil, ErrClinicNotFound
	}
	return converter.ClinicToResponse(clinic), nil
}

func (u *clinicUsecase) UpdateSettings(ctx context.Context, clinicID uuid.UUID, req *dto.UpdateClinicSettingsRequest) (*dto.ClinicResponse, error) {
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

	oldValue := entity.JSON{
		"allow_parallel_appointments": clinic.AllowParallelAppointments,
		"parallel_appointments_limit": clinic.ParallelAppointmentsLimit,
	}

	if req.AllowParallelAppointments != nil {
		clinic.AllowParallelAppointments = *req.AllowParallelAppointments
	}
	if req.ParallelAppointmentsLimit != nil {
		clinic.ParallelAppointmentsLimit = *req.ParallelAppointmentsLimit
	}

	if err := u.clinicRepo.Update(tx, clinic); err != nil {
		u.log.Warnf("Failed to update clinic %s: %+v", clinicID, err)
		return nil, err
	}

	actorID := actorFromContext(ctx)
	u.auditService.LogAction(ctx, tx, clinicID, actorID, entity.AuditActionClinicSettingsUpdate,
		"clinic", clinic.ID.String(), oldValue, entity.JSON{
			"allow_parallel_appointments": clinic.AllowParallelAppointments,
			"parallel_appointments_limit": clinic.ParallelAppointmentsLimit,
		})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit clinic settings update: %+v", err)
		return nil, err
	}

	return converter.ClinicToResponse(clinic), nil
}
