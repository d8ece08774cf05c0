package models

import (
	"strconv"
	"time"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusReturned RequestStatus = "returned"
)

// LoanRequest is one user's attempt to borrow one equipment item. All
// status transitions happen in the remote API; the portal only triggers
// transition attempts and reflects the state it last fetched.
type LoanRequest struct {
	ID            int           `json:"id"`
	UserID        int           `json:"user_id"`
	UserName      string        `json:"user_name,omitempty"`
	EquipmentID   int           `json:"equipment_id"`
	EquipmentName string        `json:"equipment_name,omitempty"`
	Status        RequestStatus `json:"status"`
	IssueDate     string        `json:"issue_date,omitempty"`
	ReturnDate    string        `json:"return_date,omitempty"`
}

func (r LoanRequest) CanApprove() bool { return r.Status == StatusPending }
func (r LoanRequest) CanReject() bool  { return r.Status == StatusPending }
func (r LoanRequest) CanReturn() bool  { return r.Status == StatusApproved }

// UserLabel prefers the joined user name, falling back to the id.
func (r LoanRequest) UserLabel() string {
	if r.UserName != "" {
		return r.UserName
	}
	return strconv.Itoa(r.UserID)
}

// EquipmentLabel prefers the joined equipment name, falling back to the id.
func (r LoanRequest) EquipmentLabel() string {
	if r.EquipmentName != "" {
		return r.EquipmentName
	}
	return strconv.Itoa(r.EquipmentID)
}

func (r LoanRequest) IssuedAt() string   { return formatDate(r.IssueDate) }
func (r LoanRequest) ReturnedAt() string { return formatDate(r.ReturnDate) }

// dateLayouts covers the formats the remote API has been seen emitting.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatDate(s string) string {
	if s == "" {
		return "—"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	}
	return s
}

// CountByStatus tallies requests per status for the admin totals line.
// Keyed by plain strings so templates can index it directly.
func CountByStatus(rows []LoanRequest) map[string]int {
	counts := map[string]int{}
	for _, r := range rows {
		counts[string(r.Status)]++
	}
	return counts
}
