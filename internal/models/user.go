package models

import "strconv"

type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// User is the record returned by the remote login endpoint. It lives in
// the session store for the duration of the browser session and nowhere
// else.
type User struct {
	ID   int    `json:"user_id"`
	Name string `json:"name,omitempty"`
	Role Role   `json:"role"`
}

// CanManage reports whether the user may see admin views and controls.
// staff and admin are treated identically for authorization.
func (u User) CanManage() bool {
	return u.Role == RoleAdmin || u.Role == RoleStaff
}

// Label resolves a display name, falling back to the numeric id.
func (u User) Label() string {
	if u.Name != "" {
		return u.Name
	}
	return strconv.Itoa(u.ID)
}
