package device

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/application/device/usecases"
	domaindevice "github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/shared/biztime"
	"github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/utils"
)

// CreateDeviceRequest represents the payload for POST /api/devices
type CreateDeviceRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Location     string `json:"location" binding:"required,max=255"`
	PurchaseDate string `json:"purchase_date" binding:"required"`
	InUse        bool   `json:"in_use"`
}

// ToCommand converts the request to a create command
func (r *CreateDeviceRequest) ToCommand(userID uint) usecases.CreateDeviceCommand {
	return usecases.CreateDeviceCommand{
		UserID:       userID,
		Name:         r.Name,
		Location:     r.Location,
		PurchaseDate: r.PurchaseDate,
		InUse:        r.InUse,
	}
}

// UpdateDeviceRequest represents the payload for PUT /api/devices/:id.
// All fields are replaced; partial updates are not supported.
type UpdateDeviceRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Location     string `json:"location" binding:"required,max=255"`
	PurchaseDate string `json:"purchase_date" binding:"required"`
	InUse        bool   `json:"in_use"`
}

// ToCommand converts the request to an update command
func (r *UpdateDeviceRequest) ToCommand(userID, deviceID uint) usecases.UpdateDeviceCommand {
	return usecases.UpdateDeviceCommand{
		UserID:       userID,
		DeviceID:     deviceID,
		Name:         r.Name,
		Location:     r.Location,
		PurchaseDate: r.PurchaseDate,
		InUse:        r.InUse,
	}
}

// DeviceResponse is the public shape of a device
type DeviceResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PurchaseDate string    `json:"purchase_date"`
	InUse        bool      `json:"in_use"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewDeviceResponse converts a device entity to its response shape
func NewDeviceResponse(d *domaindevice.Device) DeviceResponse {
	return DeviceResponse{
		ID:           d.ID,
		Name:         d.Name,
		Location:     d.Location,
		PurchaseDate: biztime.FormatDate(d.PurchaseDate),
		InUse:        d.InUse,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// NewDeviceResponseList converts a slice of device entities
func NewDeviceResponseList(devices []*domaindevice.Device) []DeviceResponse {
	responses := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, NewDeviceResponse(d))
	}
	return responses
}

// ListDevicesRequest carries the parsed query string of GET /api/devices
type ListDevicesRequest struct {
	Filter  domaindevice.ListFilter
	Page    int
	PerPage int
}

// parseListDevicesRequest validates and converts the list query parameters.
// Unparsable in_use and date values are rejected rather than ignored so a
// typo never silently widens the result set.
func parseListDevicesRequest(c *gin.Context) (*ListDevicesRequest, error) {
	filter := domaindevice.ListFilter{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}

	if inUseStr := c.Query("in_use"); inUseStr != "" {
		inUse, err := strconv.ParseBool(inUseStr)
		if err != nil {
			return nil, errors.NewFieldError("in_use", "The in use field must be true or false.")
		}
		filter.InUse = &inUse
	}

	if fromStr := c.Query("purchase_date_from"); fromStr != "" {
		from, err := biztime.ParseDate(fromStr)
		if err != nil {
			return nil, errors.NewFieldError("purchase_date_from", "The purchase date from is not a valid date.")
		}
		filter.PurchaseDateFrom = &from
	}

	if toStr := c.Query("purchase_date_to"); toStr != "" {
		to, err := biztime.ParseDate(toStr)
		if err != nil {
			return nil, errors.NewFieldError("purchase_date_to", "The purchase date to is not a valid date.")
		}
		filter.PurchaseDateTo = &to
	}

	pagination := utils.ParsePagination(c)
	filter.Page = pagination.Page
	filter.PerPage = pagination.PerPage

	return &ListDevicesRequest{
		Filter:  filter,
		Page:    pagination.Page,
		PerPage: pagination.PerPage,
	}, nil
}
