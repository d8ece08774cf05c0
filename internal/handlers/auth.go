package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"equipment-portal/internal/config"
)

func (h *Handlers) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"Flash": takeFlash(c), "Email": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Error": "Invalid form data", "Email": ""})
		return
	}

	form.Email = strings.TrimSpace(form.Email)
	if form.Email == "" || form.Password == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Error": "Email and password are required", "Email": form.Email})
		return
	}

	u, err := h.API.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Error": err.Error(), "Email": form.Email})
		return
	}

	if err := h.Sess.Set(c, u); err != nil {
		config.Error("save session: %v", err)
		render(c, http.StatusInternalServerError, "login.html", gin.H{"Error": "Could not start a session", "Email": form.Email})
		return
	}

	c.Redirect(http.StatusFound, "/equipment")
}

func (h *Handlers) ShowSignup(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", gin.H{"Name": "", "Email": ""})
}

type signupForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handlers) Signup(c *gin.Context) {
	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "signup.html", gin.H{"Error": "Invalid form data", "Name": "", "Email": ""})
		return
	}

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if form.Name == "" || form.Email == "" {
		render(c, http.StatusBadRequest, "signup.html", gin.H{"Error": "Name and email are required", "Name": form.Name, "Email": form.Email})
		return
	}
	if len(form.Password) < 6 {
		render(c, http.StatusBadRequest, "signup.html", gin.H{"Error": "Password must be at least 6 characters", "Name": form.Name, "Email": form.Email})
		return
	}

	if err := h.API.Signup(c.Request.Context(), form.Name, form.Email, form.Password); err != nil {
		render(c, http.StatusBadRequest, "signup.html", gin.H{"Error": err.Error(), "Name": form.Name, "Email": form.Email})
		return
	}

	setFlash(c, "Account created, please log in")
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handlers) Logout(c *gin.Context) {
	if err := h.Sess.Clear(c); err != nil {
		config.Warning("clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// Home routes unknown and root paths by login state.
func (h *Handlers) Home(c *gin.Context) {
	if _, ok := h.Sess.Current(c); ok {
		c.Redirect(http.StatusFound, "/equipment")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
