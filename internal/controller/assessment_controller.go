package controller

import (
	"strconv"

	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Assessments *service.AssessmentService
}

func NewAssessmentController(assessments *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Assessments: assessments}
}

// requesterID returns the authenticated user's id, or nil for anonymous
// requests on try-auth routes.
func requesterID(ctx *gin.Context) *uint {
	if claims := util.GetUserFromContext(ctx); claims != nil {
		id := claims.UserID
		return &id
	}
	return nil
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// Start godoc
// @Summary Start a new assessment for a domain
// @Tags assessments
// @Accept json
// @Produce json
// @Param body body service.StartAssessmentRequest true "assessment parameters"
// @Success 201 {object} util.Response{data=service.StartAssessmentResult}
// @Failure 404 {object} util.Response
// @Router /api/assessments/start [post]
func (c *AssessmentController) Start(ctx *gin.Context) {
	var req service.StartAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Assessments.Start(requesterID(ctx), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

type submitRequest struct {
	Answers []service.AnswerSubmission `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit all answers and seal the assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path int true "assessment id"
// @Param body body submitRequest true "answer list"
// @Success 200 {object} util.Response{data=service.SubmissionResult}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "already submitted"
// @Router /api/assessments/{id}/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req submitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Assessments.Submit(id, requesterID(ctx), req.Answers)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Result godoc
// @Summary Fetch an assessment with its items
// @Tags assessments
// @Produce json
// @Param id path int true "assessment id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessments/{id}/result [get]
func (c *AssessmentController) Result(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	a, err := c.Assessments.Result(id, requesterID(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, a)
}
