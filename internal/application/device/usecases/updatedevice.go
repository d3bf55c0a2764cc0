package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/services/sanitize"
)

type UpdateDeviceCommand struct {
	UserID       uint
	DeviceID     uint
	Name         string
	Location     string
	PurchaseDate string
	InUse        bool
}

type UpdateDeviceUseCase struct {
	deviceRepo device.Repository
	sanitizer  *sanitize.Service
	logger     logger.Interface
}

func NewUpdateDeviceUseCase(
	deviceRepo device.Repository,
	sanitizer *sanitize.Service,
	logger logger.Interface,
) *UpdateDeviceUseCase {
	return &UpdateDeviceUseCase{
		deviceRepo: deviceRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *UpdateDeviceUseCase) Execute(ctx context.Context, cmd UpdateDeviceCommand) (*device.Device, error) {
	existing, err := uc.deviceRepo.GetByID(ctx, cmd.UserID, cmd.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to get device for update", "device_id", cmd.DeviceID, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(constants.ErrMsgDeviceNotFound)
	}

	purchaseDate, err := parsePurchaseDate(cmd.PurchaseDate)
	if err != nil {
		return nil, err
	}

	if err := existing.Update(
		uc.sanitizer.Clean(cmd.Name),
		uc.sanitizer.Clean(cmd.Location),
		purchaseDate,
		cmd.InUse,
	); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update device", "device_id", cmd.DeviceID, "error", err)
		return nil, fmt.Errorf("failed to update device: %w", err)
	}

	return existing, nil
}
