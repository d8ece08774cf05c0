package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"equipment-portal/internal/busy"
	"equipment-portal/internal/config"
	"equipment-portal/internal/models"
)

func (h *Handlers) AdminRequests(c *gin.Context) {
	h.renderAdmin(c, "")
}

func (h *Handlers) renderAdmin(c *gin.Context, errMsg string) {
	data := gin.H{"Flash": takeFlash(c)}

	rows, err := h.API.ListAllRequests(c.Request.Context())
	if err != nil {
		config.Error("load all requests: %v", err)
		data["Error"] = err.Error()
		data["Rows"] = []models.LoanRequest{}
		data["Counts"] = map[string]int{}
		render(c, http.StatusOK, "admin.html", data)
		return
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}
	data["Rows"] = rows
	data["Counts"] = models.CountByStatus(rows)
	render(c, http.StatusOK, "admin.html", data)
}

// transition runs one admin state-transition attempt with the shared
// gating: the control only renders for pending rows, a stale post is
// refused locally, and the busy marker blocks duplicate submission.
func (h *Handlers) transition(c *gin.Context, action, flash string, call func(id int) error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderAdmin(c, "Unknown request")
		return
	}

	if models.RequestStatus(c.PostForm("status")) != models.StatusPending {
		h.renderAdmin(c, "Only pending requests can be "+strings.ToLower(flash))
		return
	}

	key := busy.Key(action, id)
	if !h.Busy.TryAcquire(key) {
		h.renderAdmin(c, "This request is still being processed")
		return
	}
	defer h.Busy.Release(key)

	if err := call(id); err != nil {
		h.renderAdmin(c, err.Error())
		return
	}

	setFlash(c, flash)
	c.Redirect(http.StatusFound, "/admin")
}

func (h *Handlers) ApproveRequest(c *gin.Context) {
	h.transition(c, "approve", "Approved", func(id int) error {
		_, err := h.API.ApproveRequest(c.Request.Context(), id)
		return err
	})
}

func (h *Handlers) RejectRequest(c *gin.Context) {
	h.transition(c, "reject", "Rejected", func(id int) error {
		_, err := h.API.RejectRequest(c.Request.Context(), id)
		return err
	})
}
