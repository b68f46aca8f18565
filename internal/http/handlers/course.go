package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
	"github.com/aartrack/aar-backend/internal/services"
)

type CourseHandler struct {
	courseService services.CourseService
}

func NewCourseHandler(courseService services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (ch *CourseHandler) List(c *gin.Context) {
	courses, err := ch.courseService.List(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, courses)
}

func (ch *CourseHandler) Stats(c *gin.Context) {
	stats, err := ch.courseService.Stats(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, stats)
}

func (ch *CourseHandler) Get(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	course, err := ch.courseService.Get(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, course)
}

func (ch *CourseHandler) Create(c *gin.Context) {
	var in services.CourseCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	course, err := ch.courseService.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (ch *CourseHandler) Update(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var in services.CourseUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	course, err := ch.courseService.Update(c.Request.Context(), courseID, in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, course)
}

func (ch *CourseHandler) Delete(c *gin.Context) {
	courseID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ch.courseService.Delete(c.Request.Context(), courseID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}
