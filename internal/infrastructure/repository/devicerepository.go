package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/persistence/mappers"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/persistence/models"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/utils"
)

// allowedDeviceOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedDeviceOrderByFields = map[string]bool{
	"id":            true,
	"name":          true,
	"location":      true,
	"purchase_date": true,
	"in_use":        true,
	"created_at":    true,
	"updated_at":    true,
}

// DeviceRepository implements the device repository interface backed by GORM.
// Every query is scoped to the owning user; soft-deleted rows are excluded
// automatically through the DeletedAt column.
type DeviceRepository struct {
	db     *gorm.DB
	mapper mappers.DeviceMapper
	logger logger.Interface
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(db *gorm.DB, logger logger.Interface) device.Repository {
	return &DeviceRepository{
		db:     db,
		mapper: mappers.NewDeviceMapper(),
		logger: logger,
	}
}

// Create creates a new device
func (r *DeviceRepository) Create(ctx context.Context, deviceEntity *device.Device) error {
	model := r.mapper.ToModel(deviceEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create device", "user_id", deviceEntity.UserID, "error", err)
		return fmt.Errorf("failed to create device: %w", err)
	}

	deviceEntity.ID = model.ID

	r.logger.Infow("device created successfully", "id", model.ID, "user_id", model.UserID)
	return nil
}

// GetByID retrieves a device owned by userID, returning nil when the device
// does not exist, is soft deleted, or belongs to another user
func (r *DeviceRepository) GetByID(ctx context.Context, userID, id uint) (*device.Device, error) {
	var model models.DeviceModel

	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get device by ID", "id", id, "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update updates an existing device
func (r *DeviceRepository) Update(ctx context.Context, deviceEntity *device.Device) error {
	model := r.mapper.ToModel(deviceEntity)

	result := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"location":      model.Location,
			"purchase_date": model.PurchaseDate,
			"in_use":        model.InUse,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update device", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete soft deletes a device owned by userID
func (r *DeviceRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.DeviceModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete device", "id", id, "user_id", userID, "error", result.Error)
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("device deleted successfully", "id", id, "user_id", userID)
	return nil
}

// List retrieves a filtered, sorted, paginated page of devices owned by userID
func (r *DeviceRepository) List(ctx context.Context, userID uint, filter device.ListFilter) ([]*device.Device, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DeviceModel{}).
		Where("user_id = ?", userID)

	if filter.Location != nil {
		query = query.Where("location LIKE ?", "%"+*filter.Location+"%")
	}
	if filter.InUse != nil {
		query = query.Where("in_use = ?", *filter.InUse)
	}
	if filter.PurchaseDateFrom != nil {
		query = query.Where("purchase_date >= ?", *filter.PurchaseDateFrom)
	}
	if filter.PurchaseDateTo != nil {
		query = query.Where("purchase_date <= ?", *filter.PurchaseDateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count devices", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	query = query.Order(r.buildOrderClause(filter.SortBy, filter.SortOrder))

	pagination := utils.ValidatePagination(filter.Page, filter.PerPage)
	offset := (pagination.Page - 1) * pagination.PerPage
	query = query.Offset(offset).Limit(pagination.PerPage)

	var deviceModels []*models.DeviceModel
	if err := query.Find(&deviceModels).Error; err != nil {
		r.logger.Errorw("failed to list devices", "user_id", userID, "error", err)
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}

	return r.mapper.ToDomainList(deviceModels), total, nil
}

// buildOrderClause validates the sort field against the whitelist and falls
// back to created_at DESC for anything unrecognized.
func (r *DeviceRepository) buildOrderClause(sortBy, sortOrder string) string {
	if !allowedDeviceOrderByFields[sortBy] {
		sortBy = "created_at"
		sortOrder = "desc"
	}

	if strings.ToLower(sortOrder) != "asc" {
		sortOrder = "desc"
	} else {
		sortOrder = "asc"
	}

	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
