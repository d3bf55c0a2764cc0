package device

import (
	"context"
	"time"
)

// Repository defines the interface for device data operations.
// All reads and writes are scoped to the owning user; soft-deleted
// devices are invisible through this interface.
type Repository interface {
	// Create creates a new device
	Create(ctx context.Context, device *Device) error

	// GetByID retrieves a device owned by userID
	GetByID(ctx context.Context, userID, id uint) (*Device, error)

	// Update updates an existing device
	Update(ctx context.Context, device *Device) error

	// Delete soft deletes a device owned by userID
	Delete(ctx context.Context, userID, id uint) error

	// List retrieves a filtered, sorted, paginated page of devices owned by userID
	List(ctx context.Context, userID uint, filter ListFilter) ([]*Device, int64, error)
}

// ListFilter represents filtering, sorting and pagination options for device list.
// Nil pointer fields mean "not filtered".
type ListFilter struct {
	Location         *string
	InUse            *bool
	PurchaseDateFrom *time.Time
	PurchaseDateTo   *time.Time
	SortBy           string // field to order by, validated against a whitelist
	SortOrder        string // asc or desc
	Page             int
	PerPage          int
}
