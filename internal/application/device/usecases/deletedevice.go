package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
)

type DeleteDeviceCommand struct {
	UserID   uint
	DeviceID uint
}

type DeleteDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewDeleteDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *DeleteDeviceUseCase {
	return &DeleteDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute soft deletes the device. A repeated delete of the same device
// reports not found because the first delete already hid it.
func (uc *DeleteDeviceUseCase) Execute(ctx context.Context, cmd DeleteDeviceCommand) error {
	existing, err := uc.deviceRepo.GetByID(ctx, cmd.UserID, cmd.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to get device for delete", "device_id", cmd.DeviceID, "error", err)
		return fmt.Errorf("failed to get device: %w", err)
	}
	if existing == nil {
		return apperrors.NewNotFoundError(constants.ErrMsgDeviceNotFound)
	}

	if err := uc.deviceRepo.Delete(ctx, cmd.UserID, cmd.DeviceID); err != nil {
		uc.logger.Errorw("failed to delete device", "device_id", cmd.DeviceID, "error", err)
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}
