package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/umut/campusgate/internal/app/models/dto"
	"github.com/umut/campusgate/internal/app/services"
	"github.com/umut/campusgate/internal/middleware"
)

// ToolController handles tool inventory endpoints
type ToolController struct {
	toolService services.ToolService
}

// NewToolController creates a new ToolController
func NewToolController(toolService services.ToolService) *ToolController {
	return &ToolController{toolService: toolService}
}

// GetTools lists the inventory
// @Summary List tools
// @Tags tools
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Tool} "Tools"
// @Router /tools [get]
func (c *ToolController) GetTools(ctx *gin.Context) {
	tools, err := c.toolService.GetTools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(tools))
}

// CreateTool adds a tool to the inventory
// @Summary Create a tool
// @Description Adds a tool; product names are unique
// @Tags tools
// @Accept json
// @Produce json
// @Param request body dto.CreateToolRequest true "Tool"
// @Success 201 {object} dto.APIResponse{data=models.Tool} "Tool created"
// @Failure 409 {object} dto.ErrorResponse "Tool already exists"
// @Router /tools [post]
func (c *ToolController) CreateTool(ctx *gin.Context) {
	var req dto.CreateToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tool data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tool, err := c.toolService.CreateTool(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(tool))
}

// UpdateTool applies a partial update to one tool
// @Summary Update a tool
// @Description Applies the recognized fields (amount, productName); unrecognized keys are dropped
// @Tags tools
// @Accept json
// @Produce json
// @Param productName path string true "Tool name"
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UpdatedResponse} "Updated"
// @Router /tools/{productName} [put]
func (c *ToolController) UpdateTool(ctx *gin.Context) {
	payload, ok := bindPatchPayload(ctx)
	if !ok {
		return
	}

	resp, err := c.toolService.UpdateTool(ctx, ctx.Param("productName"), payload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// DeleteTool removes a tool from the inventory
// @Summary Delete a tool
// @Description Removes a tool and its request links; deleting an absent tool succeeds
// @Tags tools
// @Param productName path string true "Tool name"
// @Success 204 "Deleted"
// @Router /tools/{productName} [delete]
func (c *ToolController) DeleteTool(ctx *gin.Context) {
	if err := c.toolService.DeleteTool(ctx, ctx.Param("productName")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
