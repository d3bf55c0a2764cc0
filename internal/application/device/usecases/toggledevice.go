package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
)

type ToggleDeviceCommand struct {
	UserID   uint
	DeviceID uint
}

type ToggleDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewToggleDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *ToggleDeviceUseCase {
	return &ToggleDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute flips the in-use flag based on the value read in this request.
// Concurrent toggles apply last-write-wins.
func (uc *ToggleDeviceUseCase) Execute(ctx context.Context, cmd ToggleDeviceCommand) (*device.Device, error) {
	existing, err := uc.deviceRepo.GetByID(ctx, cmd.UserID, cmd.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to get device for toggle", "device_id", cmd.DeviceID, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError(constants.ErrMsgDeviceNotFound)
	}

	existing.ToggleInUse()

	if err := uc.deviceRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to persist toggled device", "device_id", cmd.DeviceID, "error", err)
		return nil, fmt.Errorf("failed to update device: %w", err)
	}

	return existing, nil
}
