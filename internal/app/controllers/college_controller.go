package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/middleware"
)

// CollegeController handles college, ranking and advisor endpoints
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{collegeService: collegeService}
}

// GetColleges lists colleges
// @Summary List colleges
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Colleges"
// @Router /colleges [get]
func (c *CollegeController) GetColleges(ctx *gin.Context) {
	colleges, err := c.collegeService.GetColleges(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(colleges))
}

// CreateCollege opens a college record
// @Summary Create a college
// @Description Opens a college record; names are unique
// @Tags colleges
// @Accept json
// @Produce json
// @Param request body dto.CreateCollegeRequest true "College"
// @Success 201 {object} dto.APIResponse{data=dto.CreateCollegeResponse} "College created"
// @Failure 409 {object} dto.ErrorResponse "College already exists"
// @Router /colleges [post]
func (c *CollegeController) CreateCollege(ctx *gin.Context) {
	var req dto.CreateCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.collegeService.CreateCollege(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// DeleteCollege removes a college
// @Summary Delete a college
// @Description Removes a college; deleting an absent name succeeds
// @Tags colleges
// @Param collegeName path string true "College name"
// @Success 204 "Deleted"
// @Router /colleges/{collegeName} [delete]
func (c *CollegeController) DeleteCollege(ctx *gin.Context) {
	if err := c.collegeService.DeleteCollege(ctx, ctx.Param("collegeName")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetRankings lists school rankings
// @Summary List school rankings
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SchoolRanking} "Rankings"
// @Router /rankings [get]
func (c *CollegeController) GetRankings(ctx *gin.Context) {
	rankings, err := c.collegeService.GetRankings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rankings))
}

// GetAdvisors lists advisor accounts
// @Summary List advisors
// @Tags colleges
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Advisors"
// @Router /advisors [get]
func (c *CollegeController) GetAdvisors(ctx *gin.Context) {
	advisors, err := c.collegeService.GetAdvisors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(advisors))
}
