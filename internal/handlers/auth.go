package handlers

import (
	"net/http"

	"biotrack/internal/service"

	"github.com/gin-gonic/gin"
)

const errInvalidCredentials = "Invalid credentials"

type signUpForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Age      string `form:"age"`
	Gender   string `form:"gender"`
	Password string `form:"password"`
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (h *Handler) signUpPage(c *gin.Context) {
	h.render(c, http.StatusOK, "signup.tmpl", gin.H{"Title": "Sign up"})
}

func (h *Handler) signUp(c *gin.Context) {
	var form signUpForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Infow("auth_bad_request_body", "err", err)
		h.renderSignUp(c, http.StatusBadRequest, form, "invalid form submission")
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Name:     form.Name,
		Email:    form.Email,
		Age:      form.Age,
		Gender:   form.Gender,
		Password: form.Password,
	})
	if err != nil {
		switch service.KindOf(err) {
		case service.KindValidation, service.KindConflict:
			status := statusFor(err)
			h.logFailure(status, "auth_sign_up_failed", err, "email", form.Email)
			h.renderSignUp(c, status, form, service.PublicMessage(err))
		default:
			h.renderError(c, "auth_sign_up_failed", err, "email", form.Email)
		}
		return
	}

	h.log.Infow("auth_signed_up", "user_id", id)
	c.Redirect(http.StatusFound, "/login")
}

// renderSignUp re-renders the form, keeping everything but the password.
func (h *Handler) renderSignUp(c *gin.Context, status int, form signUpForm, msg string) {
	form.Password = ""
	h.render(c, status, "signup.tmpl", gin.H{
		"Title": "Sign up",
		"Form":  form,
		"Error": msg,
	})
}

func (h *Handler) loginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "", "")
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Infow("auth_bad_request_body", "err", err)
		h.renderLogin(c, http.StatusBadRequest, form.Email, "invalid form submission")
		return
	}

	u, err := h.services.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		switch service.KindOf(err) {
		case service.KindAuthentication:
			h.log.Infow("auth_sign_in_failed", "email", form.Email)
			h.renderLogin(c, http.StatusOK, form.Email, errInvalidCredentials)
		case service.KindValidation:
			h.logFailure(http.StatusBadRequest, "auth_sign_in_failed", err)
			h.renderLogin(c, http.StatusBadRequest, form.Email, service.PublicMessage(err))
		default:
			h.renderError(c, "auth_sign_in_failed", err)
		}
		return
	}

	token, err := h.services.IssueSession(u)
	if err != nil {
		h.renderError(c, "auth_issue_session_failed", err, "user_id", u.ID)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) renderLogin(c *gin.Context, status int, email, msg string) {
	h.render(c, status, "login.tmpl", gin.H{
		"Title": "Log in",
		"Email": email,
		"Error": msg,
	})
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
