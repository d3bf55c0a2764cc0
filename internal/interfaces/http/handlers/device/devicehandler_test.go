package device

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitlog-inc/kitlog/internal/application/device/usecases"
	domaindevice "github.com/kitlog-inc/kitlog/internal/domain/device"
	"github.com/kitlog-inc/kitlog/internal/interfaces/http/handlers/testutil"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	"github.com/kitlog-inc/kitlog/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateDeviceUC struct {
	result *domaindevice.Device
	err    error

	gotCmd usecases.CreateDeviceCommand
}

func (m *mockCreateDeviceUC) Execute(ctx context.Context, cmd usecases.CreateDeviceCommand) (*domaindevice.Device, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockGetDeviceUC struct {
	result *domaindevice.Device
	err    error

	gotQuery usecases.GetDeviceQuery
}

func (m *mockGetDeviceUC) Execute(ctx context.Context, query usecases.GetDeviceQuery) (*domaindevice.Device, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockListDevicesUC struct {
	result *usecases.ListDevicesResult
	err    error

	gotQuery usecases.ListDevicesQuery
}

func (m *mockListDevicesUC) Execute(ctx context.Context, query usecases.ListDevicesQuery) (*usecases.ListDevicesResult, error) {
	m.gotQuery = query
	return m.result, m.err
}

type mockUpdateDeviceUC struct {
	result *domaindevice.Device
	err    error

	gotCmd usecases.UpdateDeviceCommand
}

func (m *mockUpdateDeviceUC) Execute(ctx context.Context, cmd usecases.UpdateDeviceCommand) (*domaindevice.Device, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

type mockDeleteDeviceUC struct {
	err error

	gotCmd usecases.DeleteDeviceCommand
}

func (m *mockDeleteDeviceUC) Execute(ctx context.Context, cmd usecases.DeleteDeviceCommand) error {
	m.gotCmd = cmd
	return m.err
}

type mockToggleDeviceUC struct {
	result *domaindevice.Device
	err    error

	gotCmd usecases.ToggleDeviceCommand
}

func (m *mockToggleDeviceUC) Execute(ctx context.Context, cmd usecases.ToggleDeviceCommand) (*domaindevice.Device, error) {
	m.gotCmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helpers
// =====================================================================

func createTestDevice() *domaindevice.Device {
	now := time.Now().UTC()
	return &domaindevice.Device{
		ID:           1,
		UserID:       1,
		Name:         "ThinkPad X1",
		Location:     "Office 3F",
		PurchaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		InUse:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newTestHandler(
	createUC CreateDeviceExecutor,
	getUC GetDeviceExecutor,
	listUC ListDevicesExecutor,
	updateUC UpdateDeviceExecutor,
	deleteUC DeleteDeviceExecutor,
	toggleUC ToggleDeviceExecutor,
) *DeviceHandler {
	return NewDeviceHandler(createUC, getUC, listUC, updateUC, deleteUC, toggleUC)
}

// =====================================================================
// TestDeviceHandler_CreateDevice
// =====================================================================

func TestDeviceHandler_CreateDevice_Success(t *testing.T) {
	testDevice := createTestDevice()
	mockUC := &mockCreateDeviceUC{result: testDevice}
	handler := newTestHandler(mockUC, nil, nil, nil, nil, nil)

	reqBody := CreateDeviceRequest{
		Name:         "ThinkPad X1",
		Location:     "Office 3F",
		PurchaseDate: "2024-03-15",
		InUse:        true,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/devices", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateDevice(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Device created successfully", resp.Message)

	var data DeviceResponse
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, uint(1), data.ID)
	assert.Equal(t, "2024-03-15", data.PurchaseDate)
	assert.True(t, data.InUse)

	assert.Equal(t, uint(1), mockUC.gotCmd.UserID)
	assert.Equal(t, "2024-03-15", mockUC.gotCmd.PurchaseDate)
}

func TestDeviceHandler_CreateDevice_MissingFields(t *testing.T) {
	handler := newTestHandler(&mockCreateDeviceUC{}, nil, nil, nil, nil, nil)

	reqBody := map[string]string{"name": "ThinkPad X1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/devices", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateDevice(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "The location field is required.", resp.Error.Fields["location"])
	assert.Equal(t, "The purchase date field is required.", resp.Error.Fields["purchase_date"])
}

func TestDeviceHandler_CreateDevice_FutureDate(t *testing.T) {
	mockUC := &mockCreateDeviceUC{err: errors.NewFieldError("purchase_date", "The purchase date cannot be in the future.")}
	handler := newTestHandler(mockUC, nil, nil, nil, nil, nil)

	reqBody := CreateDeviceRequest{
		Name:         "ThinkPad X1",
		Location:     "Office 3F",
		PurchaseDate: "2999-01-01",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/devices", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateDevice(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "The purchase date cannot be in the future.", resp.Error.Fields["purchase_date"])
}

// =====================================================================
// TestDeviceHandler_GetDevice
// =====================================================================

func TestDeviceHandler_GetDevice_Success(t *testing.T) {
	mockUC := &mockGetDeviceUC{result: createTestDevice()}
	handler := newTestHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices/1", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.GetDevice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var data DeviceResponse
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad X1", data.Name)
	assert.Equal(t, uint(1), mockUC.gotQuery.DeviceID)
}

func TestDeviceHandler_GetDevice_NotFound(t *testing.T) {
	mockUC := &mockGetDeviceUC{err: errors.NewNotFoundError(constants.ErrMsgDeviceNotFound)}
	handler := newTestHandler(nil, mockUC, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices/999", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "999")

	handler.GetDevice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Device not found", resp.Error.Message)
}

func TestDeviceHandler_GetDevice_MalformedID(t *testing.T) {
	handler := newTestHandler(nil, &mockGetDeviceUC{}, nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices/abc", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetDevice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Device not found", resp.Error.Message)
}

// =====================================================================
// TestDeviceHandler_ListDevices
// =====================================================================

func TestDeviceHandler_ListDevices_Success(t *testing.T) {
	mockUC := &mockListDevicesUC{result: &usecases.ListDevicesResult{
		Devices: []*domaindevice.Device{createTestDevice()},
		Total:   1,
	}}
	handler := newTestHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices", nil)
	testutil.SetAuthContext(c, 1)

	handler.ListDevices(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)

	var data struct {
		Items      []DeviceResponse `json:"items"`
		Total      int64            `json:"total"`
		Page       int              `json:"page"`
		PerPage    int              `json:"per_page"`
		TotalPages int              `json:"total_pages"`
	}
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Len(t, data.Items, 1)
	assert.Equal(t, int64(1), data.Total)
	assert.Equal(t, 1, data.Page)
	assert.Equal(t, 15, data.PerPage)
	assert.Equal(t, 1, data.TotalPages)
}

func TestDeviceHandler_ListDevices_PassesFilters(t *testing.T) {
	mockUC := &mockListDevicesUC{result: &usecases.ListDevicesResult{}}
	handler := newTestHandler(nil, nil, mockUC, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetQueryParams(c, map[string]string{
		"location":           "Office 3F",
		"in_use":             "true",
		"purchase_date_from": "2024-01-01",
		"purchase_date_to":   "2024-12-31",
		"sort_by":            "name",
		"sort_order":         "asc",
		"page":               "2",
		"per_page":           "5",
	})

	handler.ListDevices(c)

	assert.Equal(t, http.StatusOK, w.Code)

	filter := mockUC.gotQuery.Filter
	require.NotNil(t, filter.Location)
	assert.Equal(t, "Office 3F", *filter.Location)
	require.NotNil(t, filter.InUse)
	assert.True(t, *filter.InUse)
	require.NotNil(t, filter.PurchaseDateFrom)
	require.NotNil(t, filter.PurchaseDateTo)
	assert.Equal(t, "name", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 5, filter.PerPage)
}

func TestDeviceHandler_ListDevices_InvalidInUse(t *testing.T) {
	handler := newTestHandler(nil, nil, &mockListDevicesUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetQueryParams(c, map[string]string{"in_use": "maybe"})

	handler.ListDevices(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "The in use field must be true or false.", resp.Error.Fields["in_use"])
}

func TestDeviceHandler_ListDevices_InvalidDateFilter(t *testing.T) {
	handler := newTestHandler(nil, nil, &mockListDevicesUC{}, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/devices", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetQueryParams(c, map[string]string{"purchase_date_from": "15-03-2024"})

	handler.ListDevices(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Fields, "purchase_date_from")
}

// =====================================================================
// TestDeviceHandler_UpdateDevice
// =====================================================================

func TestDeviceHandler_UpdateDevice_Success(t *testing.T) {
	updated := createTestDevice()
	updated.Name = "ThinkPad X1 Carbon"
	mockUC := &mockUpdateDeviceUC{result: updated}
	handler := newTestHandler(nil, nil, nil, mockUC, nil, nil)

	reqBody := UpdateDeviceRequest{
		Name:         "ThinkPad X1 Carbon",
		Location:     "Office 3F",
		PurchaseDate: "2024-03-15",
		InUse:        false,
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/devices/1", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateDevice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.Equal(t, "Device updated successfully", resp.Message)

	var data DeviceResponse
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.Equal(t, "ThinkPad X1 Carbon", data.Name)

	assert.Equal(t, uint(1), mockUC.gotCmd.DeviceID)
	assert.False(t, mockUC.gotCmd.InUse)
}

func TestDeviceHandler_UpdateDevice_NotFound(t *testing.T) {
	mockUC := &mockUpdateDeviceUC{err: errors.NewNotFoundError(constants.ErrMsgDeviceNotFound)}
	handler := newTestHandler(nil, nil, nil, mockUC, nil, nil)

	reqBody := UpdateDeviceRequest{
		Name:         "ThinkPad X1",
		Location:     "Office 3F",
		PurchaseDate: "2024-03-15",
	}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/devices/999", reqBody)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "999")

	handler.UpdateDevice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestDeviceHandler_DeleteDevice
// =====================================================================

func TestDeviceHandler_DeleteDevice_Success(t *testing.T) {
	mockUC := &mockDeleteDeviceUC{}
	handler := newTestHandler(nil, nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/devices/1", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteDevice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Device deleted successfully", resp.Message)
	assert.Equal(t, uint(1), mockUC.gotCmd.DeviceID)
	assert.Equal(t, uint(1), mockUC.gotCmd.UserID)
}

func TestDeviceHandler_DeleteDevice_NotFound(t *testing.T) {
	mockUC := &mockDeleteDeviceUC{err: errors.NewNotFoundError(constants.ErrMsgDeviceNotFound)}
	handler := newTestHandler(nil, nil, nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/devices/999", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "999")

	handler.DeleteDevice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestDeviceHandler_ToggleDevice
// =====================================================================

func TestDeviceHandler_ToggleDevice_Success(t *testing.T) {
	toggled := createTestDevice()
	toggled.InUse = false
	mockUC := &mockToggleDeviceUC{result: toggled}
	handler := newTestHandler(nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/devices/1/use", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.ToggleDevice(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.Equal(t, "Device status toggled successfully", resp.Message)

	var data DeviceResponse
	err = json.Unmarshal(resp.Data, &data)
	require.NoError(t, err)
	assert.False(t, data.InUse)
}

func TestDeviceHandler_ToggleDevice_NotFound(t *testing.T) {
	mockUC := &mockToggleDeviceUC{err: errors.NewNotFoundError(constants.ErrMsgDeviceNotFound)}
	handler := newTestHandler(nil, nil, nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/devices/999/use", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "999")

	handler.ToggleDevice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
