package models

import "testing"

func TestTransitionGates(t *testing.T) {
	cases := []struct {
		status     RequestStatus
		canApprove bool
		canReject  bool
		canReturn  bool
	}{
		{StatusPending, true, true, false},
		{StatusApproved, false, false, true},
		{StatusRejected, false, false, false},
		{StatusReturned, false, false, false},
	}

	for _, tc := range cases {
		r := LoanRequest{Status: tc.status}
		if r.CanApprove() != tc.canApprove {
			t.Errorf("%s: CanApprove = %v, want %v", tc.status, r.CanApprove(), tc.canApprove)
		}
		if r.CanReject() != tc.canReject {
			t.Errorf("%s: CanReject = %v, want %v", tc.status, r.CanReject(), tc.canReject)
		}
		if r.CanReturn() != tc.canReturn {
			t.Errorf("%s: CanReturn = %v, want %v", tc.status, r.CanReturn(), tc.canReturn)
		}
	}
}

func TestLabels(t *testing.T) {
	r := LoanRequest{ID: 1, UserID: 42, EquipmentID: 7}
	if got := r.UserLabel(); got != "42" {
		t.Errorf("UserLabel = %q, want id fallback", got)
	}
	if got := r.EquipmentLabel(); got != "7" {
		t.Errorf("EquipmentLabel = %q, want id fallback", got)
	}

	r.UserName = "Sam"
	r.EquipmentName = "Drill"
	if got := r.UserLabel(); got != "Sam" {
		t.Errorf("UserLabel = %q, want Sam", got)
	}
	if got := r.EquipmentLabel(); got != "Drill" {
		t.Errorf("EquipmentLabel = %q, want Drill", got)
	}
}

func TestUserLabel(t *testing.T) {
	if got := (User{ID: 9}).Label(); got != "9" {
		t.Errorf("Label = %q, want id fallback", got)
	}
	if got := (User{ID: 9, Name: "Sam"}).Label(); got != "Sam" {
		t.Errorf("Label = %q, want Sam", got)
	}
}

func TestCanManage(t *testing.T) {
	if (User{Role: RoleUser}).CanManage() {
		t.Error("role user should not manage")
	}
	if !(User{Role: RoleStaff}).CanManage() {
		t.Error("role staff should manage")
	}
	if !(User{Role: RoleAdmin}).CanManage() {
		t.Error("role admin should manage")
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "—"},
		{"2024-10-02T15:04:05Z", "2024-10-02 15:04"},
		{"Wed, 02 Oct 2024 15:04:05 GMT", "2024-10-02 15:04"},
		{"2024-10-02 15:04:05", "2024-10-02 15:04"},
		{"not a date", "not a date"},
	}
	for _, tc := range cases {
		if got := formatDate(tc.in); got != tc.want {
			t.Errorf("formatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCountByStatus(t *testing.T) {
	rows := []LoanRequest{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusApproved},
		{Status: StatusReturned},
	}
	counts := CountByStatus(rows)
	if counts["pending"] != 2 || counts["approved"] != 1 || counts["rejected"] != 0 || counts["returned"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
