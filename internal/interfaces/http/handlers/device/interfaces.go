package device

import (
	"context"

	"github.com/kitlog-inc/kitlog/internal/application/device/usecases"
	domaindevice "github.com/kitlog-inc/kitlog/internal/domain/device"
)

// Executor interfaces decouple the handler from the concrete usecases so
// tests can substitute mocks.

type CreateDeviceExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateDeviceCommand) (*domaindevice.Device, error)
}

type GetDeviceExecutor interface {
	Execute(ctx context.Context, query usecases.GetDeviceQuery) (*domaindevice.Device, error)
}

type ListDevicesExecutor interface {
	Execute(ctx context.Context, query usecases.ListDevicesQuery) (*usecases.ListDevicesResult, error)
}

type UpdateDeviceExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateDeviceCommand) (*domaindevice.Device, error)
}

type DeleteDeviceExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteDeviceCommand) error
}

type ToggleDeviceExecutor interface {
	Execute(ctx context.Context, cmd usecases.ToggleDeviceCommand) (*domaindevice.Device, error)
}
