package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/middleware"
	"github.com/umut/campusgate/internal/pkg/helpers"
)

// defaultMaintenanceWindowMonths bounds the recent-maintenance listing when
// the client gives no window.
const defaultMaintenanceWindowMonths = 2

// CampusController handles club, instrument, rental, classroom and
// reservation endpoints
type CampusController struct {
	campusService services.CampusService
}

// NewCampusController creates a new CampusController
func NewCampusController(campusService services.CampusService) *CampusController {
	return &CampusController{campusService: campusService}
}

// GetClubs lists student organizations
// @Summary List clubs
// @Tags campus
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Club} "Clubs"
// @Router /clubs [get]
func (c *CampusController) GetClubs(ctx *gin.Context) {
	clubs, err := c.campusService.GetClubs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(clubs))
}

// JoinClub enrolls a student in a club
// @Summary Join a club
// @Tags campus
// @Accept json
// @Param name path string true "Club name"
// @Success 201 "Joined"
// @Router /clubs/{name}/members [post]
func (c *CampusController) JoinClub(ctx *gin.Context) {
	var req struct {
		StudentID int64 `json:"studentId" binding:"required,gt=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid membership data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.campusService.JoinClub(ctx, ctx.Param("name"), req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusCreated)
}

// LeaveClub drops a student from a club
// @Summary Leave a club
// @Tags campus
// @Param name path string true "Club name"
// @Param studentId path int true "Student user id"
// @Success 204 "Left"
// @Router /clubs/{name}/members/{studentId} [delete]
func (c *CampusController) LeaveClub(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.campusService.LeaveClub(ctx, ctx.Param("name"), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetInstruments lists instruments
// @Summary List instruments
// @Description Lists instruments, optionally restricted to available ones
// @Tags campus
// @Produce json
// @Param available query bool false "Availability filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Instrument} "Instruments"
// @Router /instruments [get]
func (c *CampusController) GetInstruments(ctx *gin.Context) {
	var available *bool
	if value, present := helpers.ParseBoolParam(ctx, "available"); present {
		available = &value
	}

	instruments, err := c.campusService.GetInstruments(ctx, available)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(instruments))
}

// GetRentals lists rentals
// @Summary List rentals
// @Tags campus
// @Produce json
// @Param studentId query int false "Student filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Rental} "Rentals"
// @Router /rentals [get]
func (c *CampusController) GetRentals(ctx *gin.Context) {
	studentID, ok := parseOptionalIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	rentals, err := c.campusService.GetRentals(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rentals))
}

// CreateRental opens an instrument rental
// @Summary Open a rental
// @Description Opens a rental on an available instrument and marks it unavailable
// @Tags campus
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequest true "Rental"
// @Success 201 {object} dto.APIResponse{data=dto.CreateRentalResponse} "Rental opened"
// @Failure 404 {object} dto.ErrorResponse "Instrument not found"
// @Failure 409 {object} dto.ErrorResponse "Instrument not available"
// @Router /rentals [post]
func (c *CampusController) CreateRental(ctx *gin.Context) {
	var req dto.CreateRentalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid rental data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.campusService.CreateRental(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// UpdateRental applies a partial update to a rental
// @Summary Update a rental
// @Description Applies the recognized fields; setting a return date closes the rental and frees the instrument
// @Tags campus
// @Accept json
// @Produce json
// @Param rentalId path int true "Rental id"
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UpdatedResponse} "Update result"
// @Router /rentals/{rentalId} [patch]
func (c *CampusController) UpdateRental(ctx *gin.Context) {
	rentalID, ok := parseIDParam(ctx, "rentalId")
	if !ok {
		return
	}
	payload, ok := bindPatchPayload(ctx)
	if !ok {
		return
	}

	resp, err := c.campusService.UpdateRental(ctx, rentalID, payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// GetClassrooms lists classrooms
// @Summary List classrooms
// @Description Lists classrooms, optionally restricted by reservable status
// @Tags campus
// @Produce json
// @Param status query bool false "Status filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom} "Classrooms"
// @Router /classrooms [get]
func (c *CampusController) GetClassrooms(ctx *gin.Context) {
	var status *bool
	if value, present := helpers.ParseBoolParam(ctx, "status"); present {
		status = &value
	}

	classrooms, err := c.campusService.GetClassrooms(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(classrooms))
}

// GetRecentlyMaintained lists classrooms maintained recently
// @Summary List recently maintained classrooms
// @Description Lists classrooms maintained within the trailing window of whole months
// @Tags campus
// @Produce json
// @Param months query int false "Window in months" default(6)
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom} "Classrooms"
// @Router /classrooms/maintenance/recent [get]
func (c *CampusController) GetRecentlyMaintained(ctx *gin.Context) {
	months := defaultMaintenanceWindowMonths
	if raw := ctx.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid months")
			errorDetail = errorDetail.WithField("months")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		months = parsed
	}

	classrooms, err := c.campusService.GetRecentlyMaintained(ctx, months)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(classrooms))
}

// GetReservations lists classroom bookings
// @Summary List reservations
// @Tags campus
// @Produce json
// @Param studentId query int false "Student filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Reservation} "Reservations"
// @Router /reserves [get]
func (c *CampusController) GetReservations(ctx *gin.Context) {
	studentID, ok := parseOptionalIDQuery(ctx, "studentId")
	if !ok {
		return
	}

	reservations, err := c.campusService.GetReservations(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(reservations))
}

// CreateReservation books a classroom time slot
// @Summary Create a reservation
// @Tags campus
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} dto.APIResponse{data=dto.CreateReservationResponse} "Reservation created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /reserves [post]
func (c *CampusController) CreateReservation(ctx *gin.Context) {
	var req dto.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reservation data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.campusService.CreateReservation(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// DeleteReservation cancels a booking
// @Summary Cancel a reservation
// @Description Cancels a booking; cancelling an absent id succeeds
// @Tags campus
// @Param reserveId path int true "Reservation id"
// @Success 204 "Cancelled"
// @Router /reserves/{reserveId} [delete]
func (c *CampusController) DeleteReservation(ctx *gin.Context) {
	reserveID, ok := parseIDParam(ctx, "reserveId")
	if !ok {
		return
	}

	if err := c.campusService.DeleteReservation(ctx, reserveID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
