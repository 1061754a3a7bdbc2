package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/middleware"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudents lists students
// @Summary List students
// @Description Lists students joined with their user identity, optionally filtered by college and year
// @Tags students
// @Produce json
// @Param college query string false "College filter"
// @Param year query string false "Year filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentRow} "Students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	var filter dto.StudentFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	rows, err := c.studentService.GetStudents(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// CreateStudent inserts a student record
// @Summary Create a student record
// @Description Inserts a student record for an existing user account
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student record"
// @Success 201 {object} dto.APIResponse{data=dto.CreateStudentResponse} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.studentService.CreateStudent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// UpdateStudent applies a partial update
// @Summary Update a student record
// @Description Applies the recognized fields of the payload; unknown keys are ignored. A payload with no recognized keys reports zero updates.
// @Tags students
// @Accept json
// @Produce json
// @Param userId path int true "Student user id"
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UpdatedResponse} "Update result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{userId} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	payload, ok := bindPatchPayload(ctx)
	if !ok {
		return
	}

	resp, err := c.studentService.UpdateStudent(ctx, userID, payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// DeleteStudent removes a student record
// @Summary Delete a student record
// @Description Removes a student record; deleting an absent id succeeds
// @Tags students
// @Param userId path int true "Student user id"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{userId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetStudentGPA returns one student's GPA
// @Summary Get a student's GPA
// @Description Returns the GPA, null when the student has no recorded GPA
// @Tags students
// @Produce json
// @Param userId path int true "Student user id"
// @Success 200 {object} dto.APIResponse{data=dto.GPAResponse} "GPA"
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Router /students/{userId}/gpa [get]
func (c *StudentController) GetStudentGPA(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	resp, err := c.studentService.GetStudentGPA(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// GetAllGPAs returns every recorded GPA
// @Summary List all GPAs
// @Description Returns every recorded GPA for distribution charts
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]number} "GPAs"
// @Router /students/gpas [get]
func (c *StudentController) GetAllGPAs(ctx *gin.Context) {
	gpas, err := c.studentService.GetAllGPAs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gpas))
}

// GetSchedule returns a student's class schedule
// @Summary Get a student's schedule
// @Tags students
// @Produce json
// @Param userId path int true "Student user id"
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleEntry} "Schedule"
// @Router /students/{userId}/schedule [get]
func (c *StudentController) GetSchedule(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	entries, err := c.studentService.GetSchedule(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(entries))
}

// GetAdvisorEmail returns the student's advisor contact
// @Summary Get a student's advisor email
// @Description Returns the advisor's email, null when the student has no advisor
// @Tags students
// @Produce json
// @Param userId path int true "Student user id"
// @Success 200 {object} dto.APIResponse{data=dto.AdvisorEmailResponse} "Advisor email"
// @Router /students/{userId}/advisor [get]
func (c *StudentController) GetAdvisorEmail(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	resp, err := c.studentService.GetAdvisorEmail(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// GetClubs returns a student's club memberships
// @Summary Get a student's clubs
// @Tags students
// @Produce json
// @Param userId path int true "Student user id"
// @Success 200 {object} dto.APIResponse{data=[]models.ClubMembership} "Memberships"
// @Router /students/{userId}/clubs [get]
func (c *StudentController) GetClubs(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	memberships, err := c.studentService.GetClubs(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(memberships))
}
