package handlers

import (
	"github.com/gin-gonic/gin"

	"equipment-portal/internal/models"
)

// render wraps c.HTML and hands the current user to every template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CanManage"] = u.CanManage()
		}
	}

	c.HTML(status, tmpl, data)
}
