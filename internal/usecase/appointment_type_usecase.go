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
	ErrAppointmentTypeNotFound = errors.New("appointment type not found")
)

type AppointmentTypeUsecase interface {
	Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	Update(ctx context.Context, clinicID, id uuid.UUID, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error)
	Delete(ctx context.Context, clinicID, id uuid.UUID) error
	GetByID(ctx context.Context, clinicID, id uuid.UUID) (*dto.AppointmentTypeResponse, error)
	GetAll(ctx context.Context, clinicID uuid.UUID) (*dto.AppointmentTypeListResponse, error)
}

type appointmentTypeUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	typeRepo repository.AppointmentTypeRepository
}

func NewAppointmentTypeUsecase(db *gorm.DB, log *logrus.Logger, typeRepo repository.AppointmentTypeRepository) AppointmentTypeUsecase {
	return &appointmentTypeUsecase{
		db:       db,
		log:      log,
		typeRepo: typeRepo,
	}
}

func (u *appointmentTypeUsecase) Create(ctx context.Context, clinicID uuid.UUID, req *dto.CreateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	appointmentType := &entity.AppointmentType{
		ClinicID:        clinicID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
	}

	if err := u.typeRepo.Create(u.db.WithContext(ctx), appointmentType); err != nil {
		u.log.Warnf("Failed to create appointment type: %+v", err)
		return nil, err
	}

	return converter.AppointmentTypeToResponse(appointmentType), nil
}

func (u *appointmentTypeUsecase) Update(ctx context.Context, clinicID, id uuid.UUID, req *dto.UpdateAppointmentTypeRequest) (*dto.AppointmentTypeResponse, error) {
	appointmentType, err := u.typeRepo.FindByClinicAndID(u.db.WithContext(ctx), clinicID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", id, err)
		return nil, err
	}
	if appointmentType == nil {
		return nil, ErrAppointmentTypeNotFound
	}

	if req.Name != nil {
		appointmentType.Name = *req.Name
	}
	if req.Description != nil {
		appointmentType.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		appointmentType.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		appointmentType.Price = *req.Price
	}

	if err := u.typeRepo.Update(u.db.WithContext(ctx), appointmentType); err != nil {
		u.log.Warnf("Failed to update appointment type %s: %+v", id, err)
		return nil, err
	}

	return converter.AppointmentTypeToResponse(appointmentType), nil
}

func (u *appointmentTypeUsecase) Delete(ctx context.Context, clinicID, id uuid.UUID) error {
	affected, err := u.typeRepo.Delete(u.db.WithContext(ctx), clinicID, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment type %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentTypeNotFound
	}
	return nil
}

func (u *appointmentTypeUsecase) GetByID(ctx context.Context, clinicID, id uuid.UUID) (*dto.AppointmentTypeResponse, error) {
	appointmentType, err := u.typeRepo.FindByClinicAndID(u.db.WithContext(ctx), clinicID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment type %s: %+v", id, err)
		return nil, err
	}
	if appointmentType == nil {
		return nil, ErrAppointmentTypeNotFound
	}
	return converter.AppointmentTypeToResponse(appointmentType), nil
}

func (u *appointmentTypeUsecase) GetAll(ctx context.Context, clinicID uuid.UUID) (*dto.AppointmentTypeListResponse, error) {
	types, err := u.typeRepo.FindByClinic(u.db.WithContext(ctx), clinicID)
	if err != nil {
		u.log.Warnf("Failed to list appointment types for clinic %s: %+v", clinicID, err)
		return nil, err
	}

	return &dto.AppointmentTypeListResponse{
		AppointmentTypes: converter.AppointmentTypesToResponses(types),
		Total:            len(types),
	}, nil
}
