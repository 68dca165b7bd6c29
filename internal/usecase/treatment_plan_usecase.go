package usecase

import (
	"context"
	"errors"

	"clinic-ops-backend/internal/converter"
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTreatmentPlanNotFound = errors.New("treatment plan not found")
)

type TreatmentPlanUsecase interface {
	CreateTreatmentPlan(ctx context.Context, clinicID uuid.UUID, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error)
	GetTreatmentPlan(ctx context.Context, clinicID, planID uuid.UUID) (*dto.TreatmentPlanResponse, error)
	ListTreatmentPlansForPatient(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.TreatmentPlanListResponse, error)
}

type treatmentPlanUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	planRepo    repository.TreatmentPlanRepository
	patientRepo repository.PatientRepository
}

func NewTreatmentPlanUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	planRepo repository.TreatmentPlanRepository,
	patientRepo repository.PatientRepository,
) TreatmentPlanUsecase {
	return &treatmentPlanUsecase{
		db:          db,
		log:         log,
		planRepo:    planRepo,
		patientRepo: patientRepo,
	}
}

func (u *treatmentPlanUsecase) CreateTreatmentPlan(ctx context.Context, clinicID uuid.UUID, req *dto.CreateTreatmentPlanRequest) (*dto.TreatmentPlanResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByClinicAndID(tx, clinicID, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	procedures := make([]entity.TreatmentPlanProcedure, len(req.Procedures))
	for i, p := range req.Procedures {
		procedures[i] = entity.TreatmentPlanProcedure{
			Name:               p.Name,
			ContractedSessions: p.ContractedSessions,
			UnitPrice:          p.UnitPrice,
		}
	}

	plan := &entity.TreatmentPlan{
		ClinicID:   clinicID,
		PatientID:  req.PatientID,
		Title:      req.Title,
		Procedures: procedures,
	}

	if err := u.planRepo.Create(tx, plan); err != nil {
		u.log.Warnf("Failed to create treatment plan: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit treatment plan creation: %+v", err)
		return nil, err
	}

	return converter.TreatmentPlanToResponse(plan), nil
}

func (u *treatmentPlanUsecase) GetTreatmentPlan(ctx context.Context, clinicID, planID uuid.UUID) (*dto.TreatmentPlanResponse, error) {
	plan, err := u.planRepo.FindByClinicAndID(u.db.WithContext(ctx), clinicID, planID)
	if err != nil {
		u.log.Warnf("Failed to find treatment plan %s: %+v", planID, err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrTreatmentPlanNotFound
	}
	return converter.TreatmentPlanToResponse(plan), nil
}

// ListTreatmentPlansForPatient returns all plans of one patient, with their
// procedure lines and session progress
func (u *treatmentPlanUsecase) ListTreatmentPlansForPatient(ctx context.Context, clinicID, patientID uuid.UUID) (*dto.TreatmentPlanListResponse, error) {
	patient, err := u.patientRepo.FindByClinicAndID(u.db.WithContext(ctx), clinicID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	plans, err := u.planRepo.FindByPatient(u.db.WithContext(ctx), clinicID, patientID)
	if err != nil {
		u.log.Warnf("Failed to list treatment plans for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.TreatmentPlanListResponse{
		TreatmentPlans: converter.TreatmentPlansToResponses(plans),
		Total:          len(plans),
	}, nil
}
