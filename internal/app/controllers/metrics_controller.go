package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/middleware"
	"github.com/umut/campusgate/internal/pkg/helpers"
)

// MetricsController handles the report endpoints backing the president and
// dean dashboards
type MetricsController struct {
	metricsService services.MetricsService
}

// NewMetricsController creates a new MetricsController
func NewMetricsController(metricsService services.MetricsService) *MetricsController {
	return &MetricsController{metricsService: metricsService}
}

// resolveDeanCollege parses the deanId path parameter and resolves it to the
// dean's college. Deans without a college surface as 404 through the error
// middleware.
func (c *MetricsController) resolveDeanCollege(ctx *gin.Context) (*string, bool) {
	deanID, ok := parseIDParam(ctx, "deanId")
	if !ok {
		return nil, false
	}

	resp, err := c.metricsService.GetDeanCollege(ctx, deanID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}

	return &resp.CollegeName, true
}

// GetDemographics reports the student demographic breakdown
// @Summary Student demographics
// @Description Buckets students per demographic attribute; percentages within each attribute sum to 100
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.DemographicRow} "Demographics"
// @Router /metrics/demographics [get]
func (c *MetricsController) GetDemographics(ctx *gin.Context) {
	rows, err := c.metricsService.GetDemographics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetAlumniEmployment reports alumni employment per college
// @Summary Alumni employment
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.EmploymentRow} "Employment"
// @Router /metrics/alumni [get]
func (c *MetricsController) GetAlumniEmployment(ctx *gin.Context) {
	rows, err := c.metricsService.GetAlumniEmployment(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetCollegeGPAs reports the average GPA per college
// @Summary Average GPA per college
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CollegeGPA} "Averages"
// @Router /colleges/averages/gpa [get]
func (c *MetricsController) GetCollegeGPAs(ctx *gin.Context) {
	rows, err := c.metricsService.GetCollegeGPAs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetStudentTeacherRatios reports students per teacher for each college
// @Summary Student-teacher ratios
// @Description Reports students per teacher; the ratio is null for colleges without teachers
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.RatioRow} "Ratios"
// @Router /colleges/metrics/student-teacher-ratio [get]
func (c *MetricsController) GetStudentTeacherRatios(ctx *gin.Context) {
	rows, err := c.metricsService.GetStudentTeacherRatios(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetCourseVacancies reports enrollment against capacity per course
// @Summary Course vacancies
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.VacancyRow} "Vacancies"
// @Router /courses/vacancies [get]
func (c *MetricsController) GetCourseVacancies(ctx *gin.Context) {
	rows, err := c.metricsService.GetCourseVacancies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetPresidentBudget reports the budget position of every college
// @Summary Per-college budgets
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.BudgetSummaryRow} "Budgets"
// @Router /metrics/president/budget [get]
func (c *MetricsController) GetPresidentBudget(ctx *gin.Context) {
	rows, err := c.metricsService.GetCollegeBudgets(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetPresidentSpending reports university-wide spending over time
// @Summary University spending trend
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.SpendingTrendRow} "Spending"
// @Router /metrics/president/budget/spending-trend [get]
func (c *MetricsController) GetPresidentSpending(ctx *gin.Context) {
	rows, err := c.metricsService.GetSpendingTrend(ctx, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetPresidentCourseBudgets reports the financial breakdown of every course
// @Summary University course budgets
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseBudgetRow} "Course budgets"
// @Router /metrics/president/budget/by-course [get]
func (c *MetricsController) GetPresidentCourseBudgets(ctx *gin.Context) {
	rows, err := c.metricsService.GetCourseBudgets(ctx, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetPresidentDonations lists the most recent donation line items
// @Summary University donations
// @Tags metrics
// @Produce json
// @Param limit query int false "Row limit"
// @Success 200 {object} dto.APIResponse{data=[]models.DonationRow} "Donations"
// @Router /metrics/president/budget/donations [get]
func (c *MetricsController) GetPresidentDonations(ctx *gin.Context) {
	limit := uint64(helpers.ParseLimitParam(ctx, helpers.DefaultListLimit))
	rows, err := c.metricsService.GetDonations(ctx, nil, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetPresidentCourseDonations totals donations per course
// @Summary University donations per course
// @Tags metrics
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CourseDonations} "Donations"
// @Router /metrics/president/budget/donations-by-course [get]
func (c *MetricsController) GetPresidentCourseDonations(ctx *gin.Context) {
	rows, err := c.metricsService.GetCourseDonations(ctx, nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetDeanCollege resolves a dean to their college
// @Summary Dean's college
// @Description Resolves a dean's user id to the college they run
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=dto.DeanCollegeResponse} "College"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/college [get]
func (c *MetricsController) GetDeanCollege(ctx *gin.Context) {
	deanID, ok := parseIDParam(ctx, "deanId")
	if !ok {
		return
	}

	resp, err := c.metricsService.GetDeanCollege(ctx, deanID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// GetDeanBudgetSummary reports the budget position of the dean's college
// @Summary Dean budget summary
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=dto.BudgetSummaryRow} "Summary"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/budget/summary [get]
func (c *MetricsController) GetDeanBudgetSummary(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	summary, err := c.metricsService.GetBudgetSummary(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// GetDeanSpendingTrend reports the dean's college spending over time
// @Summary Dean spending trend
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=[]dto.SpendingTrendRow} "Spending"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/budget/spending-trend [get]
func (c *MetricsController) GetDeanSpendingTrend(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	rows, err := c.metricsService.GetSpendingTrend(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetDeanCourseBudgets reports per-course budgets of the dean's college
// @Summary Dean course budgets
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseBudgetRow} "Course budgets"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/budget/by-course [get]
func (c *MetricsController) GetDeanCourseBudgets(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	rows, err := c.metricsService.GetCourseBudgets(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetDeanDonations lists the dean's college donation line items
// @Summary Dean donations
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Param limit query int false "Row limit"
// @Success 200 {object} dto.APIResponse{data=[]models.DonationRow} "Donations"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/budget/donations [get]
func (c *MetricsController) GetDeanDonations(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	limit := uint64(helpers.ParseLimitParam(ctx, helpers.DefaultListLimit))
	rows, err := c.metricsService.GetDonations(ctx, college, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetDeanCourseDonations totals donations per course of the dean's college
// @Summary Dean donations per course
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=[]models.CourseDonations} "Donations"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/budget/donations-by-course [get]
func (c *MetricsController) GetDeanCourseDonations(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	rows, err := c.metricsService.GetCourseDonations(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetDeanPlacementSummary reports the dean's college placement rate
// @Summary Dean placement summary
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=dto.PlacementSummaryRow} "Summary"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/alumni/placement/summary [get]
func (c *MetricsController) GetDeanPlacementSummary(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	summary, err := c.metricsService.GetPlacementSummary(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(summary))
}

// GetDeanPlacementByCourse reports placement per course for the dean's college
// @Summary Dean placement per course
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=[]dto.CoursePlacementRow} "Placement"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/alumni/placement/by-course [get]
func (c *MetricsController) GetDeanPlacementByCourse(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	rows, err := c.metricsService.GetPlacementByCourse(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetDeanPlacementByYear reports placement per year for the dean's college
// @Summary Dean placement per year
// @Tags metrics
// @Produce json
// @Param deanId path int true "Dean user id"
// @Success 200 {object} dto.APIResponse{data=[]dto.YearPlacementRow} "Placement"
// @Failure 404 {object} dto.ErrorResponse "No college assigned to this dean"
// @Router /metrics/deans/{deanId}/alumni/placement/by-year [get]
func (c *MetricsController) GetDeanPlacementByYear(ctx *gin.Context) {
	college, ok := c.resolveDeanCollege(ctx)
	if !ok {
		return
	}

	rows, err := c.metricsService.GetPlacementByYear(ctx, college)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}
