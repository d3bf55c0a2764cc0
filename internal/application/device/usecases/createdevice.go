package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/services/sanitize"
)

type CreateDeviceCommand struct {
	UserID       uint
	Name         string
	Location     string
	PurchaseDate string
	InUse        bool
}

type CreateDeviceUseCase struct {
	deviceRepo device.Repository
	sanitizer  *sanitize.Service
	logger     logger.Interface
}

func NewCreateDeviceUseCase(
	deviceRepo device.Repository,
	sanitizer *sanitize.Service,
	logger logger.Interface,
) *CreateDeviceUseCase {
	return &CreateDeviceUseCase{
		deviceRepo: deviceRepo,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

func (uc *CreateDeviceUseCase) Execute(ctx context.Context, cmd CreateDeviceCommand) (*device.Device, error) {
	purchaseDate, err := parsePurchaseDate(cmd.PurchaseDate)
	if err != nil {
		return nil, err
	}

	newDevice, err := device.NewDevice(
		cmd.UserID,
		uc.sanitizer.Clean(cmd.Name),
		uc.sanitizer.Clean(cmd.Location),
		purchaseDate,
		cmd.InUse,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Create(ctx, newDevice); err != nil {
		uc.logger.Errorw("failed to create device", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return newDevice, nil
}

// parsePurchaseDate converts the wire date into UTC and rejects future dates
// with field-level validation errors.
func parsePurchaseDate(dateStr string) (time.Time, error) {
	purchaseDate, err := biztime.ParseDate(dateStr)
	if err != nil {
		return time.Time{}, apperrors.NewFieldError("purchase_date", "The purchase date is not a valid date.")
	}
	if purchaseDate.After(biztime.EndOfDayUTC(biztime.NowUTC())) {
		return time.Time{}, apperrors.NewFieldError("purchase_date", "The purchase date cannot be in the future.")
	}
	return purchaseDate, nil
}
