package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
)

type GetDeviceQuery struct {
	UserID   uint
	DeviceID uint
}

type GetDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewGetDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *GetDeviceUseCase {
	return &GetDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute returns the device when it exists and belongs to the caller.
// Missing, deleted and foreign devices all yield the same not found error.
func (uc *GetDeviceUseCase) Execute(ctx context.Context, query GetDeviceQuery) (*device.Device, error) {
	found, err := uc.deviceRepo.GetByID(ctx, query.UserID, query.DeviceID)
	if err != nil {
		uc.logger.Errorw("failed to get device", "device_id", query.DeviceID, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError(constants.ErrMsgDeviceNotFound)
	}

	return found, nil
}
