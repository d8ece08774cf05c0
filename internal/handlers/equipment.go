package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"equipment-portal/internal/api"
	"equipment-portal/internal/busy"
	"equipment-portal/internal/config"
	"equipment-portal/internal/models"
)

func (h *Handlers) ListEquipment(c *gin.Context) {
	h.renderEquipment(c, c.Query("q"), c.DefaultQuery("category", "all"), "")
}

// renderEquipment loads and renders the equipment view. errMsg carries
// a mutation failure; a load failure replaces it and leaves the list
// empty.
func (h *Handlers) renderEquipment(c *gin.Context, query, category, errMsg string) {
	data := gin.H{
		"Query":    query,
		"Category": category,
		"Flash":    takeFlash(c),
	}

	items, err := h.API.ListEquipment(c.Request.Context())
	if err != nil {
		config.Error("load equipment: %v", err)
		data["Error"] = err.Error()
		data["Items"] = []models.Equipment{}
		data["Categories"] = []string{"all"}
		render(c, http.StatusOK, "equipment.html", data)
		return
	}

	if errMsg != "" {
		data["Error"] = errMsg
	}
	data["Items"] = models.FilterEquipment(items, query, category)
	data["Categories"] = append([]string{"all"}, models.Categories(items)...)
	render(c, http.StatusOK, "equipment.html", data)
}

func (h *Handlers) Borrow(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderEquipment(c, "", "all", "Unknown equipment")
		return
	}

	// Gate on the availability the row was rendered with; the remote
	// service stays authoritative for the real count.
	if avail, err := strconv.Atoi(c.PostForm("available")); err == nil && avail <= 0 {
		h.renderEquipment(c, "", "all", "This item is out of stock")
		return
	}

	key := busy.Key("borrow", id)
	if !h.Busy.TryAcquire(key) {
		h.renderEquipment(c, "", "all", "A borrow request for this item is still in progress")
		return
	}
	defer h.Busy.Release(key)

	if _, err := h.API.Borrow(c.Request.Context(), u.ID, id); err != nil {
		h.renderEquipment(c, "", "all", err.Error())
		return
	}

	setFlash(c, "Request submitted")
	c.Redirect(http.StatusFound, "/equipment")
}

type equipmentForm struct {
	Name              string `form:"name"`
	Category          string `form:"category"`
	ConditionStatus   string `form:"condition_status"`
	Quantity          int    `form:"quantity"`
	AvailableQuantity int    `form:"available_quantity"`
}

func (f *equipmentForm) input() api.EquipmentInput {
	return api.EquipmentInput{
		Name:              f.Name,
		Category:          f.Category,
		ConditionStatus:   f.ConditionStatus,
		Quantity:          f.Quantity,
		AvailableQuantity: f.AvailableQuantity,
	}
}

func (h *Handlers) ShowNewEquipment(c *gin.Context) {
	render(c, http.StatusOK, "equipment_new.html", gin.H{
		"Conditions": models.Conditions,
		"Form":       equipmentForm{ConditionStatus: "good", Quantity: 1},
	})
}

func (h *Handlers) CreateEquipment(c *gin.Context) {
	var form equipmentForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "equipment_new.html", gin.H{
			"Conditions": models.Conditions,
			"Form":       form,
			"Error":      "Invalid form data",
		})
		return
	}
	form.Name = strings.TrimSpace(form.Name)

	if form.Name == "" || form.Quantity <= 0 {
		render(c, http.StatusBadRequest, "equipment_new.html", gin.H{
			"Conditions": models.Conditions,
			"Form":       form,
			"Error":      "Name and a quantity above zero are required",
		})
		return
	}

	// New stock starts fully available.
	form.AvailableQuantity = form.Quantity
	if _, err := h.API.AddEquipment(c.Request.Context(), form.input()); err != nil {
		render(c, http.StatusBadRequest, "equipment_new.html", gin.H{
			"Conditions": models.Conditions,
			"Form":       form,
			"Error":      err.Error(),
		})
		return
	}

	setFlash(c, "Equipment added")
	c.Redirect(http.StatusFound, "/equipment")
}

// findEquipment looks the item up in a fresh list load; the remote
// service has no fetch-by-id endpoint.
func (h *Handlers) findEquipment(c *gin.Context, id int) (*models.Equipment, error) {
	items, err := h.API.ListEquipment(c.Request.Context())
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (h *Handlers) ShowEditEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderEquipment(c, "", "all", "Unknown equipment")
		return
	}

	item, err := h.findEquipment(c, id)
	if err != nil {
		h.renderEquipment(c, "", "all", err.Error())
		return
	}
	if item == nil {
		h.renderEquipment(c, "", "all", "Equipment not found")
		return
	}

	render(c, http.StatusOK, "equipment_edit.html", gin.H{
		"Conditions": models.Conditions,
		"ID":         item.ID,
		"Form": equipmentForm{
			Name:              item.Name,
			Category:          item.Category,
			ConditionStatus:   item.ConditionStatus,
			Quantity:          item.Quantity,
			AvailableQuantity: item.AvailableQuantity,
		},
	})
}

func (h *Handlers) UpdateEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderEquipment(c, "", "all", "Unknown equipment")
		return
	}

	var form equipmentForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "equipment_edit.html", gin.H{
			"Conditions": models.Conditions,
			"ID":         id,
			"Form":       form,
			"Error":      "Invalid form data",
		})
		return
	}
	form.Name = strings.TrimSpace(form.Name)

	var msg string
	switch {
	case form.Name == "":
		msg = "Name is required"
	case form.Quantity < 0 || form.AvailableQuantity < 0:
		msg = "Quantities cannot be negative"
	case form.AvailableQuantity > form.Quantity:
		msg = "Available cannot exceed total quantity"
	}
	if msg != "" {
		render(c, http.StatusBadRequest, "equipment_edit.html", gin.H{
			"Conditions": models.Conditions,
			"ID":         id,
			"Form":       form,
			"Error":      msg,
		})
		return
	}

	key := busy.Key("update", id)
	if !h.Busy.TryAcquire(key) {
		h.renderEquipment(c, "", "all", "An update for this item is still in progress")
		return
	}
	defer h.Busy.Release(key)

	if _, err := h.API.UpdateEquipment(c.Request.Context(), id, form.input()); err != nil {
		render(c, http.StatusBadRequest, "equipment_edit.html", gin.H{
			"Conditions": models.Conditions,
			"ID":         id,
			"Form":       form,
			"Error":      err.Error(),
		})
		return
	}

	setFlash(c, "Changes saved")
	c.Redirect(http.StatusFound, "/equipment")
}

// ShowDeleteEquipment is the explicit confirmation step of the delete
// flow.
func (h *Handlers) ShowDeleteEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderEquipment(c, "", "all", "Unknown equipment")
		return
	}

	item, err := h.findEquipment(c, id)
	if err != nil {
		h.renderEquipment(c, "", "all", err.Error())
		return
	}
	if item == nil {
		h.renderEquipment(c, "", "all", "Equipment not found")
		return
	}

	render(c, http.StatusOK, "equipment_delete.html", gin.H{"Item": item})
}

func (h *Handlers) DeleteEquipment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.renderEquipment(c, "", "all", "Unknown equipment")
		return
	}

	key := busy.Key("delete", id)
	if !h.Busy.TryAcquire(key) {
		h.renderEquipment(c, "", "all", "A delete for this item is still in progress")
		return
	}
	defer h.Busy.Release(key)

	if err := h.API.DeleteEquipment(c.Request.Context(), id); err != nil {
		h.renderEquipment(c, "", "all", err.Error())
		return
	}

	setFlash(c, "Deleted")
	c.Redirect(http.StatusFound, "/equipment")
}
