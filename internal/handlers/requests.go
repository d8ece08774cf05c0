package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"equipment-portal/internal/busy"
	"equipment-portal/internal/config"
	"equipment-portal/internal/models"
)

func (h *Handlers) MyRequests(c *gin.Context) {
	h.renderMyRequests(c, "")
}

func (h *Handlers) renderMyRequests(c *gin.Context, errMsg string) {
	u, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	data := gin.H{"Flash": takeFlash(c)}

	rows, err := h.API.ListUserRequests(c.Request.Context(), u.ID)
	if err != nil {
		config.Error("load requests for user %d: %v", u.ID, err)
		data["Error"] = err.Error()
		data["Rows"] = []models.LoanRequest{}
		render(c, http.StatusOK, "my_requests.html", data)
		return
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}
	data["Rows"] = rows
	render(c, http.StatusOK, "my_requests.html", data)
}

func (h *Handlers) ReturnRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderMyRequests(c, "Unknown request")
		return
	}

	// The Return control only renders for approved rows; a stale page
	// can still post, so refuse locally before any remote call.
	if models.RequestStatus(c.PostForm("status")) != models.StatusApproved {
		h.renderMyRequests(c, "Only approved requests can be returned")
		return
	}

	key := busy.Key("return", id)
	if !h.Busy.TryAcquire(key) {
		h.renderMyRequests(c, "A return for this request is still in progress")
		return
	}
	defer h.Busy.Release(key)

	if _, err := h.API.ReturnRequest(c.Request.Context(), id); err != nil {
		h.renderMyRequests(c, err.Error())
		return
	}

	setFlash(c, "Item returned")
	c.Redirect(http.StatusFound, "/my")
}
