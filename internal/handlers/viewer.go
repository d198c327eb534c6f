package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/alimgiray/ghprofile/internal/middleware"
	"github.com/alimgiray/ghprofile/internal/repositories"
	"github.com/alimgiray/ghprofile/internal/services"
	"github.com/alimgiray/ghprofile/internal/views"
	"github.com/alimgiray/ghprofile/pkg/logger"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ViewerHandler struct {
	viewers       *repositories.ViewerRepository
	exportService *services.ExportService
}

func NewViewerHandler(viewers *repositories.ViewerRepository, exportService *services.ExportService) *ViewerHandler {
	return &ViewerHandler{
		viewers:       viewers,
		exportService: exportService,
	}
}

// InputRequest is the body of an input change event
type InputRequest struct {
	Username *string `json:"username" binding:"required"`
}

// SearchRequest is the optional body of an API search
type SearchRequest struct {
	Username *string `json:"username"`
}

// Index renders the viewer page of the current session
func (h *ViewerHandler) Index(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	data := gin.H{
		"Title": views.Title,
		"Page":  views.Build(viewer.Snapshot()),
	}

	c.HTML(http.StatusOK, "index", data)
}

// Search handles the form submission and redirects back to the page
func (h *ViewerHandler) Search(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	viewer.SetInput(c.PostForm("username"))
	h.submit(c, viewer)

	c.Redirect(http.StatusSeeOther, "/")
}

// State returns the JSON view of the current session's viewer
func (h *ViewerHandler) State(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, views.Build(viewer.Snapshot()))
}

// UpdateInput stores a new username value without searching
func (h *ViewerHandler) UpdateInput(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	var req InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	viewer.SetInput(*req.Username)
	c.JSON(http.StatusOK, views.Build(viewer.Snapshot()))
}

// APISearch runs a search and returns the resulting JSON view. A username in
// the body replaces the input first; without one the current input is used.
func (h *ViewerHandler) APISearch(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Username != nil {
		viewer.SetInput(*req.Username)
	}

	h.submit(c, viewer)
	c.JSON(http.StatusOK, views.Build(viewer.Snapshot()))
}

// Export downloads the displayed result as a spreadsheet
func (h *ViewerHandler) Export(c *gin.Context) {
	viewer, ok := h.viewer(c)
	if !ok {
		return
	}

	result := viewer.Snapshot().Result
	var buf bytes.Buffer
	if err := h.exportService.WriteWorkbook(&buf, result); err != nil {
		if errors.Is(err, services.ErrNothingToExport) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.WithError(err).Error("failed to export search result")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export search result"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.exportService.Filename(result)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Reset unmounts the session's viewer. The next request mounts an idle one.
func (h *ViewerHandler) Reset(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
		return
	}

	h.viewers.Delete(session.ID)
	c.Status(http.StatusNoContent)
}

// submit runs a search for the viewer's input. A client that disconnects
// does not abort it.
func (h *ViewerHandler) submit(c *gin.Context, viewer *services.Viewer) {
	ctx := context.WithoutCancel(c.Request.Context())
	if err := viewer.Submit(ctx); err != nil {
		logger.WithField("session_id", middleware.GetSession(c).ID).
			WithField("error", services.ErrorMessage(err)).
			Debug("search recorded an error")
	}
}

// viewer returns the viewer mounted for the request's session
func (h *ViewerHandler) viewer(c *gin.Context) (*services.Viewer, bool) {
	session := middleware.GetSession(c)
	if session == nil {
		logger.Error("request reached the viewer without a session")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session unavailable"})
		return nil, false
	}
	return h.viewers.GetOrCreate(session.ID), true
}
