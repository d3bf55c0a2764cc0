package device

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kitlog-inc/kitlog/internal/application/device/usecases"
	"github.com/kitlog-inc/kitlog/internal/shared/constants"
	"github.com/kitlog-inc/kitlog/internal/shared/errors"
	"github.com/kitlog-inc/kitlog/internal/shared/logger"
	"github.com/kitlog-inc/kitlog/internal/shared/utils"
)

type DeviceHandler struct {
	createDeviceUC CreateDeviceExecutor
	getDeviceUC    GetDeviceExecutor
	listDevicesUC  ListDevicesExecutor
	updateDeviceUC UpdateDeviceExecutor
	deleteDeviceUC DeleteDeviceExecutor
	toggleDeviceUC ToggleDeviceExecutor
	logger         logger.Interface
}

func NewDeviceHandler(
	createDeviceUC CreateDeviceExecutor,
	getDeviceUC GetDeviceExecutor,
	listDevicesUC ListDevicesExecutor,
	updateDeviceUC UpdateDeviceExecutor,
	deleteDeviceUC DeleteDeviceExecutor,
	toggleDeviceUC ToggleDeviceExecutor,
) *DeviceHandler {
	return &DeviceHandler{
		createDeviceUC: createDeviceUC,
		getDeviceUC:    getDeviceUC,
		listDevicesUC:  listDevicesUC,
		updateDeviceUC: updateDeviceUC,
		deleteDeviceUC: deleteDeviceUC,
		toggleDeviceUC: toggleDeviceUC,
		logger:         logger.NewLogger(),
	}
}

// CreateDevice handles POST /api/devices
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create device", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.createDeviceUC.Execute(c.Request.Context(), req.ToCommand(currentUserID(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, NewDeviceResponse(result), "Device created successfully")
}

// GetDevice handles GET /api/devices/:id
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	deviceID, err := parseDeviceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDeviceUC.Execute(c.Request.Context(), usecases.GetDeviceQuery{
		UserID:   currentUserID(c),
		DeviceID: deviceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", NewDeviceResponse(result))
}

// ListDevices handles GET /api/devices
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	req, err := parseListDevicesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listDevicesUC.Execute(c.Request.Context(), usecases.ListDevicesQuery{
		UserID: currentUserID(c),
		Filter: req.Filter,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, NewDeviceResponseList(result.Devices), result.Total, req.Page, req.PerPage)
}

// UpdateDevice handles PUT /api/devices/:id
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	deviceID, err := parseDeviceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update device", "error", err)
		utils.ErrorResponseWithError(c, utils.NewBindingError(err))
		return
	}

	result, err := h.updateDeviceUC.Execute(c.Request.Context(), req.ToCommand(currentUserID(c), deviceID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device updated successfully", NewDeviceResponse(result))
}

// DeleteDevice handles DELETE /api/devices/:id
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	deviceID, err := parseDeviceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDeviceUC.Execute(c.Request.Context(), usecases.DeleteDeviceCommand{
		UserID:   currentUserID(c),
		DeviceID: deviceID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device deleted successfully", nil)
}

// ToggleDevice handles PATCH /api/devices/:id/use
func (h *DeviceHandler) ToggleDevice(c *gin.Context) {
	deviceID, err := parseDeviceID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.toggleDeviceUC.Execute(c.Request.Context(), usecases.ToggleDeviceCommand{
		UserID:   currentUserID(c),
		DeviceID: deviceID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device status toggled successfully", NewDeviceResponse(result))
}

func currentUserID(c *gin.Context) uint {
	userID, _ := c.Get(constants.ContextKeyUserID)
	id, _ := userID.(uint)
	return id
}

// parseDeviceID parses the :id path segment. Unparsable ids answer the same
// way as absent ones so probing cannot distinguish the two.
func parseDeviceID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError(constants.ErrMsgDeviceNotFound)
	}
	return uint(id), nil
}
