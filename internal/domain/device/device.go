// Package device holds the device inventory domain model. A device always
// belongs to exactly one user and is never visible to anyone else.
package device

import (
	"fmt"
	"strings"
	"time"

	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
)

// Device is a tracked inventory item owned by a single user.
type Device struct {
	ID           uint
	UserID       uint
	Name         string
	Location     string
	PurchaseDate time.Time
	InUse        bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDevice creates a device after validating its fields.
// PurchaseDate must not be later than today in the business timezone.
func NewDevice(userID uint, name, location string, purchaseDate time.Time, inUse bool) (*Device, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := validateFields(name, location, purchaseDate); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Device{
		UserID:       userID,
		Name:         strings.TrimSpace(name),
		Location:     strings.TrimSpace(location),
		PurchaseDate: purchaseDate,
		InUse:        inUse,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Update replaces the mutable fields after validating them.
func (d *Device) Update(name, location string, purchaseDate time.Time, inUse bool) error {
	if err := validateFields(name, location, purchaseDate); err != nil {
		return err
	}

	d.Name = strings.TrimSpace(name)
	d.Location = strings.TrimSpace(location)
	d.PurchaseDate = purchaseDate
	d.InUse = inUse
	d.UpdatedAt = biztime.NowUTC()
	return nil
}

// ToggleInUse flips the in-use flag.
func (d *Device) ToggleInUse() {
	d.InUse = !d.InUse
	d.UpdatedAt = biztime.NowUTC()
}

func validateFields(name, location string, purchaseDate time.Time) error {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)

	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > constants.MaxNameLength {
		return fmt.Errorf("name must be at most %d characters", constants.MaxNameLength)
	}
	if location == "" {
		return fmt.Errorf("location is required")
	}
	if len(location) > constants.MaxLocationLength {
		return fmt.Errorf("location must be at most %d characters", constants.MaxLocationLength)
	}
	if purchaseDate.IsZero() {
		return fmt.Errorf("purchase date is required")
	}
	if purchaseDate.After(biztime.EndOfDayUTC(biztime.NowUTC())) {
		return fmt.Errorf("purchase date cannot be in the future")
	}
	return nil
}
