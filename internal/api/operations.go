package api

import (
	"context"
	"net/http"

	"equipment-portal/internal/models"
)

// EquipmentInput carries the writable equipment fields for create and
// update calls.
type EquipmentInput struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	ConditionStatus   string `json:"condition_status"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	payload := map[string]string{"email": email, "password": password}
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/login", payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Signup(ctx context.Context, name, email, password string) error {
	payload := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/signup", payload, nil)
}

func (c *Client) ListEquipment(ctx context.Context) ([]models.Equipment, error) {
	var items []models.Equipment
	if err := c.do(ctx, http.MethodGet, "/equipments", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddEquipment(ctx context.Context, in EquipmentInput) (*models.Equipment, error) {
	var e models.Equipment
	if err := c.do(ctx, http.MethodPost, "/equipment", in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id int, in EquipmentInput) (*models.Equipment, error) {
	var e models.Equipment
	if err := c.do(ctx, http.MethodPut, pathID("/equipment", id), in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, pathID("/equipment", id), nil, nil)
}

func (c *Client) Borrow(ctx context.Context, userID, equipmentID int) (*models.LoanRequest, error) {
	payload := map[string]int{"user_id": userID, "equipment_id": equipmentID}
	var r models.LoanRequest
	if err := c.do(ctx, http.MethodPost, "/request", payload, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) ListUserRequests(ctx context.Context, userID int) ([]models.LoanRequest, error) {
	var rows []models.LoanRequest
	if err := c.do(ctx, http.MethodGet, "/requests"+queryInt("user_id", userID), nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ReturnRequest(ctx context.Context, id int) (*models.LoanRequest, error) {
	var r models.LoanRequest
	if err := c.do(ctx, http.MethodPost, pathID("/requests", id)+"/return", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) ListAllRequests(ctx context.Context) ([]models.LoanRequest, error) {
	var rows []models.LoanRequest
	if err := c.do(ctx, http.MethodGet, "/requests/all", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) ApproveRequest(ctx context.Context, id int) (*models.LoanRequest, error) {
	var r models.LoanRequest
	if err := c.do(ctx, http.MethodPost, pathID("/requests", id)+"/approve", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) RejectRequest(ctx context.Context, id int) (*models.LoanRequest, error) {
	var r models.LoanRequest
	if err := c.do(ctx, http.MethodPost, pathID("/requests", id)+"/reject", nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
