package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
	"github.com/aartrack/aar-backend/internal/services"
)

type KnowledgePointHandler struct {
	pointService services.KnowledgePointService
}

func NewKnowledgePointHandler(pointService services.KnowledgePointService) *KnowledgePointHandler {
	return &KnowledgePointHandler{pointService: pointService}
}

func (kh *KnowledgePointHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "course_id")
	if !ok {
		return
	}
	points, err := kh.pointService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, points)
}

func (kh *KnowledgePointHandler) Create(c *gin.Context) {
	var in services.KnowledgePointCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	point, err := kh.pointService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, point)
}

func (kh *KnowledgePointHandler) Update(c *gin.Context) {
	pointID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.KnowledgePointUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	point, err := kh.pointService.Update(c.Request.Context(), pointID, in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, point)
}

func (kh *KnowledgePointHandler) Delete(c *gin.Context) {
	pointID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := kh.pointService.Delete(c.Request.Context(), pointID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}
