package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
	"github.com/aartrack/aar-backend/internal/services"
)

type ReviewLogHandler struct {
	reviewLogService services.ReviewLogService
}

func NewReviewLogHandler(reviewLogService services.ReviewLogService) *ReviewLogHandler {
	return &ReviewLogHandler{reviewLogService: reviewLogService}
}

func (rh *ReviewLogHandler) ListByUser(c *gin.Context) {
	logs, err := rh.reviewLogService.ListByUser(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

func (rh *ReviewLogHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "course_id")
	if !ok {
		return
	}
	logs, err := rh.reviewLogService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, logs)
}

func (rh *ReviewLogHandler) Create(c *gin.Context) {
	var in services.ReviewLogCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	log, err := rh.reviewLogService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (rh *ReviewLogHandler) Update(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.ReviewLogUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	log, err := rh.reviewLogService.Update(c.Request.Context(), logID, in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, log)
}

func (rh *ReviewLogHandler) Delete(c *gin.Context) {
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rh.reviewLogService.Delete(c.Request.Context(), logID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}
