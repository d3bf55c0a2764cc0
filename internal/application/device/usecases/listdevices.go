package usecases

import (
	"context"
	"fmt"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
)

type ListDevicesQuery struct {
	UserID uint
	Filter device.ListFilter
}

type ListDevicesResult struct {
	Devices []*device.Device
	Total   int64
}

type ListDevicesUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewListDevicesUseCase(deviceRepo device.Repository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context, query ListDevicesQuery) (*ListDevicesResult, error) {
	devices, total, err := uc.deviceRepo.List(ctx, query.UserID, query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to list devices", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	return &ListDevicesResult{
		Devices: devices,
		Total:   total,
	}, nil
}
