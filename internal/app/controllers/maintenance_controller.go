package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/middleware"
)

// MaintenanceController handles work order endpoints
type MaintenanceController struct {
	maintenanceService services.MaintenanceService
}

// NewMaintenanceController creates a new MaintenanceController
func NewMaintenanceController(maintenanceService services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService}
}

// GetRequests lists work orders
// @Summary List maintenance requests
// @Description Lists work orders with assigned staff and attached tools, optionally filtered by staff or student
// @Tags maintenance
// @Produce json
// @Param staffId query int false "Assigned staff filter"
// @Param studentId query int false "Requesting student filter"
// @Success 200 {object} dto.APIResponse{data=[]models.MaintenanceRequestRow} "Requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /maintenance-requests [get]
func (c *MaintenanceController) GetRequests(ctx *gin.Context) {
	staffID, ok := parseOptionalIDQuery(ctx, "staffId")
	if !ok {
		return
	}
	studentID, ok := parseOptionalIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	requests, err := c.maintenanceService.GetRequests(ctx, staffID, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requests))
}

// GetStaffRequests lists work orders assigned to one staffer
// @Summary List a staffer's requests
// @Tags maintenance
// @Produce json
// @Param userId path int true "Staff user id"
// @Success 200 {object} dto.APIResponse{data=[]models.MaintenanceRequestRow} "Requests"
// @Router /maintenance-requests/staff/{userId} [get]
func (c *MaintenanceController) GetStaffRequests(ctx *gin.Context) {
	staffID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	requests, err := c.maintenanceService.GetRequests(ctx, &staffID, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requests))
}

// GetStudentRequests lists work orders submitted by one student
// @Summary List a student's requests
// @Tags maintenance
// @Produce json
// @Param userId path int true "Student user id"
// @Success 200 {object} dto.APIResponse{data=[]models.MaintenanceRequestRow} "Requests"
// @Router /maintenance-requests/student/{userId} [get]
func (c *MaintenanceController) GetStudentRequests(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	requests, err := c.maintenanceService.GetRequests(ctx, nil, &studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(requests))
}

// CreateRequest opens a work order
// @Summary Submit a maintenance request
// @Description Opens a work order in the submitted state and returns its id
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequestRequest true "Work order"
// @Success 201 {object} dto.APIResponse{data=dto.CreateMaintenanceRequestResponse} "Request created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /maintenance-requests [post]
func (c *MaintenanceController) CreateRequest(ctx *gin.Context) {
	var req dto.CreateMaintenanceRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid maintenance request data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.maintenanceService.CreateRequest(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// UpdateRequest applies a partial update
// @Summary Update a maintenance request
// @Description Applies the recognized fields of the payload; unknown keys are ignored
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UpdatedResponse} "Update result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /maintenance-requests/update/{id} [patch]
func (c *MaintenanceController) UpdateRequest(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	payload, ok := bindPatchPayload(ctx)
	if !ok {
		return
	}

	resp, err := c.maintenanceService.UpdateRequest(ctx, orderID, payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// DeleteRequest removes a work order
// @Summary Delete a maintenance request
// @Description Removes a work order and its assignments; deleting an absent id succeeds
// @Tags maintenance
// @Param id path int true "Order id"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Router /maintenance-requests/delete/{id} [delete]
func (c *MaintenanceController) DeleteRequest(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.maintenanceService.DeleteRequest(ctx, orderID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetRequestTools lists the tools attached to a work order
// @Summary List a request's tools
// @Tags maintenance
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} dto.APIResponse{data=[]models.RequestTool} "Tools"
// @Router /maintenance-requests/{id}/get/tools [get]
func (c *MaintenanceController) GetRequestTools(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	tools, err := c.maintenanceService.GetRequestTools(ctx, orderID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(tools))
}

// AttachTool links a tool to a work order
// @Summary Attach a tool
// @Description Links an inventory tool to a work order; the tool must exist
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param request body dto.AttachToolRequest true "Tool"
// @Success 201 {object} dto.APIResponse{data=dto.AttachToolResponse} "Attached"
// @Failure 404 {object} dto.ErrorResponse "Tool not found"
// @Router /maintenance-requests/{id}/post/tools [post]
func (c *MaintenanceController) AttachTool(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AttachToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tool data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.maintenanceService.AttachTool(ctx, orderID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.AttachToolResponse{Attached: true}))
}

// DetachTool unlinks a tool from a work order
// @Summary Detach a tool
// @Description Unlinks a tool; detaching an absent link succeeds
// @Tags maintenance
// @Param id path int true "Order id"
// @Param tool path string true "Tool name"
// @Success 204 "Detached"
// @Router /maintenance-requests/{id}/delete/tools/{tool} [delete]
func (c *MaintenanceController) DetachTool(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.maintenanceService.DetachTool(ctx, orderID, ctx.Param("tool")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetStaffHours lists one staffer's logged hours
// @Summary Get staff work hours
// @Tags maintenance
// @Produce json
// @Param staffId path int true "Staff user id"
// @Success 200 {object} dto.APIResponse{data=dto.StaffHoursResponse} "Hours"
// @Router /maintenance-staffs/{staffId}/hours [get]
func (c *MaintenanceController) GetStaffHours(ctx *gin.Context) {
	staffID, ok := parseIDParam(ctx, "staffId")
	if !ok {
		return
	}

	resp, err := c.maintenanceService.GetStaffHours(ctx, staffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}
