package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
	"github.com/aartrack/aar-backend/internal/services"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (th *TagHandler) List(c *gin.Context) {
	tags, err := th.tagService.ListTags(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, tags)
}

func (th *TagHandler) Create(c *gin.Context) {
	var in services.TagCreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	tag, err := th.tagService.CreateTag(c.Request.Context(), in)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (th *TagHandler) Delete(c *gin.Context) {
	tagID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := th.tagService.DeleteTag(c.Request.Context(), tagID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}

func (th *TagHandler) ListCourseTags(c *gin.Context) {
	courseID, ok := parseIDParam(c, "course_id")
	if !ok {
		return
	}
	links, err := th.tagService.ListCourseTags(c.Request.Context(), courseID)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, links)
}

func (th *TagHandler) AddTagToCourse(c *gin.Context) {
	var in services.CourseTagLinkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if err := th.tagService.AddTagToCourse(c.Request.Context(), in); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}

func (th *TagHandler) RemoveTagFromCourse(c *gin.Context) {
	courseID, ok := parseIDParam(c, "course_id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}
	if err := th.tagService.RemoveTagFromCourse(c.Request.Context(), courseID, tagID); err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondSuccess(c)
}
