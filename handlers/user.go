package handlers

import (
	"blogly/models"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *Handlers) UserList(c *gin.Context) {
	users, err := h.Repo.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "user_list.tmpl", gin.H{
		"title": "Users",
		"users": users,
	})
}

func (h *Handlers) UserNewForm(c *gin.Context) {
	render(c, http.StatusOK, "new_user_form.tmpl", gin.H{
		"title": "New User",
		"user":  models.User{},
	})
}

func (h *Handlers) UserCreate(c *gin.Context) {
	r := UserRequest{}
	if err := c.ShouldBindWith(&r, binding.FormPost); err != nil {
		badRequest(c, err)
		return
	}
	_, err := h.Repo.CreateUser(c.Request.Context(), *r.FirstName, *r.LastName, *r.ImageURL)
	if err != nil {
		fail(c, err)
		return
	}
	redirect(c, "/users", "")
}

func (h *Handlers) UserShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Repo.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "user_details.tmpl", gin.H{
		"title": user.FullName(),
		"user":  user,
	})
}

func (h *Handlers) UserEditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Repo.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "edit_user_form.tmpl", gin.H{
		"title": "Edit " + user.FullName(),
		"user":  user,
	})
}

func (h *Handlers) UserUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r := UserRequest{}
	if err := c.ShouldBindWith(&r, binding.FormPost); err != nil {
		// A missing user wins over a broken form
		if _, lookupErr := h.Repo.GetUser(c.Request.Context(), id); lookupErr != nil {
			fail(c, lookupErr)
			return
		}
		badRequest(c, err)
		return
	}
	_, err := h.Repo.UpdateUser(c.Request.Context(), id, *r.FirstName, *r.LastName, *r.ImageURL)
	if err != nil {
		fail(c, err)
		return
	}
	redirect(c, "/users/"+strconv.FormatUint(id, 10), "")
}

func (h *Handlers) UserDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	redirect(c, "/users", "")
}
