package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	apperrors "github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/services/sanitize"
)

// fakeDeviceRepo is an in-memory device.Repository for usecase tests.
type fakeDeviceRepo struct {
	devices map[uint]*device.Device
	nextID  uint
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{
		devices: make(map[uint]*device.Device),
		nextID:  1,
	}
}

func (r *fakeDeviceRepo) Create(ctx context.Context, d *device.Device) error {
	d.ID = r.nextID
	r.nextID++
	copied := *d
	r.devices[d.ID] = &copied
	return nil
}

func (r *fakeDeviceRepo) GetByID(ctx context.Context, userID, id uint) (*device.Device, error) {
	d, ok := r.devices[id]
	if !ok || d.UserID != userID {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDeviceRepo) Update(ctx context.Context, d *device.Device) error {
	existing, ok := r.devices[d.ID]
	if !ok || existing.UserID != d.UserID {
		return nil
	}
	copied := *d
	r.devices[d.ID] = &copied
	return nil
}

func (r *fakeDeviceRepo) Delete(ctx context.Context, userID, id uint) error {
	d, ok := r.devices[id]
	if ok && d.UserID == userID {
		delete(r.devices, id)
	}
	return nil
}

func (r *fakeDeviceRepo) List(ctx context.Context, userID uint, filter device.ListFilter) ([]*device.Device, int64, error) {
	var result []*device.Device
	for _, d := range r.devices {
		if d.UserID != userID {
			continue
		}
		if filter.InUse != nil && d.InUse != *filter.InUse {
			continue
		}
		if filter.Location != nil && d.Location != *filter.Location {
			continue
		}
		copied := *d
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func seedDevice(t *testing.T, repo *fakeDeviceRepo, userID uint, name string, inUse bool) *device.Device {
	t.Helper()

	purchaseDate, err := biztime.ParseDate("2024-03-15")
	require.NoError(t, err)

	d, err := device.NewDevice(userID, name, "Office", purchaseDate, inUse)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), d))
	return d
}

func TestCreateDeviceUseCase(t *testing.T) {
	log := logger.NewLogger()
	sanitizer := sanitize.NewService()

	t.Run("creates device with parsed date", func(t *testing.T) {
		repo := newFakeDeviceRepo()
		uc := NewCreateDeviceUseCase(repo, sanitizer, log)

		created, err := uc.Execute(context.Background(), CreateDeviceCommand{
			UserID:       1,
			Name:         "MacBook Pro",
			Location:     "Office 3F",
			PurchaseDate: "2024-03-15",
			InUse:        true,
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "2024-03-15", biztime.FormatDate(created.PurchaseDate))
	})

	t.Run("strips markup from free text fields", func(t *testing.T) {
		repo := newFakeDeviceRepo()
		uc := NewCreateDeviceUseCase(repo, sanitizer, log)

		created, err := uc.Execute(context.Background(), CreateDeviceCommand{
			UserID:       1,
			Name:         `<script>alert(1)</script>Laptop`,
			Location:     "<b>Desk</b> 12",
			PurchaseDate: "2024-03-15",
		})
		require.NoError(t, err)
		assert.Equal(t, "Laptop", created.Name)
		assert.Equal(t, "Desk 12", created.Location)
	})

	t.Run("rejects malformed date with field error", func(t *testing.T) {
		repo := newFakeDeviceRepo()
		uc := NewCreateDeviceUseCase(repo, sanitizer, log)

		_, err := uc.Execute(context.Background(), CreateDeviceCommand{
			UserID:       1,
			Name:         "Laptop",
			Location:     "Office",
			PurchaseDate: "15-03-2024",
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.True(t, apperrors.IsValidationError(err))
		assert.Contains(t, appErr.Fields, "purchase_date")
	})

	t.Run("rejects future date with field error", func(t *testing.T) {
		repo := newFakeDeviceRepo()
		uc := NewCreateDeviceUseCase(repo, sanitizer, log)

		_, err := uc.Execute(context.Background(), CreateDeviceCommand{
			UserID:       1,
			Name:         "Laptop",
			Location:     "Office",
			PurchaseDate: "2099-01-01",
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "The purchase date cannot be in the future.", appErr.Fields["purchase_date"])
	})
}

func TestGetDeviceUseCase(t *testing.T) {
	log := logger.NewLogger()
	repo := newFakeDeviceRepo()
	uc := NewGetDeviceUseCase(repo, log)
	seeded := seedDevice(t, repo, 1, "Printer", false)

	t.Run("returns owned device", func(t *testing.T) {
		found, err := uc.Execute(context.Background(), GetDeviceQuery{UserID: 1, DeviceID: seeded.ID})
		require.NoError(t, err)
		assert.Equal(t, "Printer", found.Name)
	})

	t.Run("another user's device reports not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDeviceQuery{UserID: 2, DeviceID: seeded.ID})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown device reports not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDeviceQuery{UserID: 1, DeviceID: 9999})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestUpdateDeviceUseCase(t *testing.T) {
	log := logger.NewLogger()
	sanitizer := sanitize.NewService()

	t.Run("replaces all mutable fields", func(t *testing.T) {
		repo := newFakeDeviceRepo()
		uc := NewUpdateDeviceUseCase(repo, sanitizer, log)
		seeded := seedDevice(t, repo, 1, "Old", false)

		updated, err := uc.Execute(context.Background(), UpdateDeviceCommand{
			UserID:       1,
			DeviceID:     seeded.ID,
			Name:         "New",
			Location:     "Warehouse",
			PurchaseDate: "2025-01-02",
			InUse:        true,
		})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, "Warehouse", updated.Location)
		assert.True(t, updated.InUse)

		stored, err := repo.GetByID(context.Background(), 1, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, "New", stored.Name)
	})

	t.Run("cross-user update reports not found", func(t *testing.T) {
		repo := newFakeDeviceRepo()
		uc := NewUpdateDeviceUseCase(repo, sanitizer, log)
		seeded := seedDevice(t, repo, 1, "Laptop", false)

		_, err := uc.Execute(context.Background(), UpdateDeviceCommand{
			UserID:       2,
			DeviceID:     seeded.ID,
			Name:         "Stolen",
			Location:     "Elsewhere",
			PurchaseDate: "2024-03-15",
		})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestDeleteDeviceUseCase(t *testing.T) {
	log := logger.NewLogger()
	repo := newFakeDeviceRepo()
	uc := NewDeleteDeviceUseCase(repo, log)
	seeded := seedDevice(t, repo, 1, "Monitor", false)

	t.Run("deletes owned device", func(t *testing.T) {
		err := uc.Execute(context.Background(), DeleteDeviceCommand{UserID: 1, DeviceID: seeded.ID})
		require.NoError(t, err)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		err := uc.Execute(context.Background(), DeleteDeviceCommand{UserID: 1, DeviceID: seeded.ID})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestToggleDeviceUseCase(t *testing.T) {
	log := logger.NewLogger()
	repo := newFakeDeviceRepo()
	uc := NewToggleDeviceUseCase(repo, log)
	seeded := seedDevice(t, repo, 1, "Projector", false)

	t.Run("double toggle lands on the original value", func(t *testing.T) {
		toggled, err := uc.Execute(context.Background(), ToggleDeviceCommand{UserID: 1, DeviceID: seeded.ID})
		require.NoError(t, err)
		assert.True(t, toggled.InUse)

		toggled, err = uc.Execute(context.Background(), ToggleDeviceCommand{UserID: 1, DeviceID: seeded.ID})
		require.NoError(t, err)
		assert.False(t, toggled.InUse)
	})

	t.Run("cross-user toggle reports not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ToggleDeviceCommand{UserID: 2, DeviceID: seeded.ID})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
