package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
	"github.com/aartrack/aar-backend/internal/services"
)

type ActionItemHandler struct {
	actionItemService services.ActionItemService
}

func NewActionItemHandler(actionItemService services.ActionItemService) *ActionItemHandler {
	return &ActionItemHandler{actionItemService: actionItemService}
}

func (ah *ActionItemHandler) ListByUser(c *gin.Context) {
	items, err := ah.actionItemService.ListByUser(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (ah *ActionItemHandler) ListByCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "course_id")
	if !ok {
		return
	}
	items, err := ah.actionItemService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, items)
}

func (ah *ActionItemHandler) Stats(c *gin.Context) {
	stats, err := ah.actionItemService.Stats(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, stats)
}

func (ah *ActionItemHandler) Create(c *gin.Context) {
	var in services.ActionItemCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	item, err := ah.actionItemService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (ah *ActionItemHandler) Update(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.ActionItemUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	item, err := ah.actionItemService.Update(c.Request.Context(), itemID, in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, item)
}

func (ah *ActionItemHandler) Delete(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ah.actionItemService.Delete(c.Request.Context(), itemID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}
