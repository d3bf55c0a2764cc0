package mappers

import (
	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/infrastructure/persistence/models"
)

// DeviceMapper handles the conversion between Device domain entities and persistence models.
// Soft-delete state lives only on the model; a domain entity always represents a live device.
type DeviceMapper interface {
	ToModel(d *device.Device) *models.DeviceModel
	ToDomain(model *models.DeviceModel) *device.Device
	ToDomainList(deviceModels []*models.DeviceModel) []*device.Device
}

// DeviceMapperImpl is the concrete implementation of DeviceMapper.
type DeviceMapperImpl struct{}

// NewDeviceMapper creates a new DeviceMapper.
func NewDeviceMapper() DeviceMapper {
	return &DeviceMapperImpl{}
}

func (m *DeviceMapperImpl) ToModel(d *device.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:           d.ID,
		UserID:       d.UserID,
		Name:         d.Name,
		Location:     d.Location,
		PurchaseDate: d.PurchaseDate,
		InUse:        d.InUse,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (m *DeviceMapperImpl) ToDomain(model *models.DeviceModel) *device.Device {
	return &device.Device{
		ID:           model.ID,
		UserID:       model.UserID,
		Name:         model.Name,
		Location:     model.Location,
		PurchaseDate: model.PurchaseDate,
		InUse:        model.InUse,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *DeviceMapperImpl) ToDomainList(deviceModels []*models.DeviceModel) []*device.Device {
	devices := make([]*device.Device, 0, len(deviceModels))
	for _, model := range deviceModels {
		devices = append(devices, m.ToDomain(model))
	}
	return devices
}
