package usecase

import (
	"context"
	"strings"

	"clinic-ops-backend/internal/converter"
	"clinic-ops-backend/internal/delivery/dto"
	"clinic-ops-backend/internal/domain/entity"
	"clinic-ops-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfessionalUsecase interface {
	CreateProfessional(ctx context.Context, clinicID uuid.UUID, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	UpdateProfessional(ctx context.Context, clinicID, professionalID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetProfessional(ctx context.Context, clinicID, professionalID uuid.UUID) (*dto.ProfessionalResponse, error)
	ListProfessionals(ctx context.Context, clinicID uuid.UUID) (*dto.ProfessionalListResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	professionalRepo repository.ProfessionalRepository
}

func NewProfessionalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	professionalRepo repository.ProfessionalRepository,
) ProfessionalUsecase {
	return &professionalUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
	}
}

// normalizeWorkingDays joins the request weekdays into the stored
// comma-separated form, upper-cased to match the entity weekday tokens.
func normalizeWorkingDays(days []string) string {
	return strings.ToUpper(strings.Join(days, ","))
}

// CreateProfessional registers a staff account with the professional role and
// attaches its bookable profile in one transaction.
func (u *professionalUsecase) CreateProfessional(ctx context.Context, clinicID uuid.UUID, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		ClinicID: clinicID,
		RoleID:   entity.RoleIDProfessional,
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		IsActive: true,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create professional user: %+v", err)
		return nil, err
	}

	profile := &entity.ProfessionalProfile{
		UserID:             user.ID,
		ClinicID:           clinicID,
		RegistrationNumber: req.RegistrationNumber,
		Specialty:          req.Specialty,
		WorkingDays:        normalizeWorkingDays(req.WorkingDays),
		ScheduleStartHour:  entity.TimeOfDay(req.ScheduleStartHour),
		ScheduleEndHour:    entity.TimeOfDay(req.ScheduleEndHour),
	}

	if err := u.professionalRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create professional profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit professional creation: %+v", err)
		return nil, err
	}

	profile.User = *user
	return converter.ProfessionalToResponse(profile), nil
}

func (u *professionalUsecase) UpdateProfessional(ctx context.Context, clinicID, professionalID uuid.UUID, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	profile, err := u.professionalRepo.FindByClinicAndUserID(u.db.WithContext(ctx), clinicID, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}

	if req.RegistrationNumber != nil {
		profile.RegistrationNumber = *req.RegistrationNumber
	}
	if req.Specialty != nil {
		profile.Specialty = *req.Specialty
	}
	if len(req.WorkingDays) > 0 {
		profile.WorkingDays = normalizeWorkingDays(req.WorkingDays)
	}
	if req.ScheduleStartHour != nil {
		profile.ScheduleStartHour = entity.TimeOfDay(*req.ScheduleStartHour)
	}
	if req.ScheduleEndHour != nil {
		profile.ScheduleEndHour = entity.TimeOfDay(*req.ScheduleEndHour)
	}

	if err := u.professionalRepo.Update(u.db.WithContext(ctx), profile); err != nil {
		u.log.Warnf("Failed to update professional %s: %+v", professionalID, err)
		return nil, err
	}

	return converter.ProfessionalToResponse(profile), nil
}

func (u *professionalUsecase) GetProfessional(ctx context.Context, clinicID, professionalID uuid.UUID) (*dto.ProfessionalResponse, error) {
	profile, err := u.professionalRepo.FindByClinicAndUserID(u.db.WithContext(ctx), clinicID, professionalID)
	if err != nil {
		u.log.Warnf("Failed to find professional %s: %+v", professionalID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfessionalNotFound
	}
	return converter.ProfessionalToResponse(profile), nil
}

func (u *professionalUsecase) ListProfessionals(ctx context.Context, clinicID uuid.UUID) (*dto.ProfessionalListResponse, error) {
	profiles, err := u.professionalRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list professionals for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.ProfessionalListResponse{
		Professionals: converter.ProfessionalsToResponses(profiles),
		Total:         len(profiles),
	}, nil
}
