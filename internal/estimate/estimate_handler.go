package estimate

import (
	"net/http"
	"strconv"

	"github.com/darkhan2409/security-cost-calculator/internal/shared/apperror"
	"github.com/darkhan2409/security-cost-calculator/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeValidationError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		httpErr := apperror.ToHTTP(apperror.InvalidField(name))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return 0, false
	}
	return v, true
}

func (h *Handler) CreateDraft(c *gin.Context) {
	resp := h.service.CreateDraft(c.Request.Context())
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetDraft(c *gin.Context) {
	resp, err := h.service.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteDraft(c *gin.Context) {
	if err := h.service.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddPost(c *gin.Context) {
	resp, err := h.service.AddPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	postID, ok := pathInt(c, "postID")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.UpdatePost(c.Request.Context(), c.Param("id"), postID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemovePost(c *gin.Context) {
	postID, ok := pathInt(c, "postID")
	if !ok {
		return
	}

	resp, err := h.service.RemovePost(c.Request.Context(), c.Param("id"), postID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddStaff(c *gin.Context) {
	postID, ok := pathInt(c, "postID")
	if !ok {
		return
	}

	resp, err := h.service.AddStaff(c.Request.Context(), c.Param("id"), postID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateStaff(c *gin.Context) {
	postID, ok := pathInt(c, "postID")
	if !ok {
		return
	}
	staffID, ok := pathInt(c, "staffID")
	if !ok {
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.UpdateStaff(c.Request.Context(), c.Param("id"), postID, staffID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RemoveStaff(c *gin.Context) {
	postID, ok := pathInt(c, "postID")
	if !ok {
		return
	}
	staffID, ok := pathInt(c, "staffID")
	if !ok {
		return
	}

	resp, err := h.service.RemoveStaff(c.Request.Context(), c.Param("id"), postID, staffID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SelectTMC(c *gin.Context) {
	var req SelectTMCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.SelectTMC(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnselectTMC(c *gin.Context) {
	resp, err := h.service.UnselectTMC(c.Request.Context(), c.Param("id"), c.Param("itemID"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetMarkup(c *gin.Context) {
	var req SetMarkupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeValidationError(c, err)
		return
	}

	resp, err := h.service.SetMarkup(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Calculate(c *gin.Context) {
	resp, err := h.service.Calculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
