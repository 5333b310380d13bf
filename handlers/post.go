package handlers

import (
	"blogly/models"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func (h *Handlers) PostNewForm(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Repo.GetUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "new_post_form.tmpl", gin.H{
		"title": "New Post",
		"user":  user,
		"post":  models.Post{},
	})
}

func (h *Handlers) PostCreate(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	r := PostRequest{}
	if err := c.ShouldBindWith(&r, binding.FormPost); err != nil {
		if _, lookupErr := h.Repo.GetUser(c.Request.Context(), userID); lookupErr != nil {
			fail(c, lookupErr)
			return
		}
		badRequest(c, err)
		return
	}
	post, err := h.Repo.CreatePost(c.Request.Context(), userID, *r.Title, *r.Content)
	if err != nil {
		fail(c, err)
		return
	}
	redirect(c, "/users/"+strconv.FormatUint(userID, 10), fmt.Sprintf(`Post "%s" added!`, post.Title))
}

func (h *Handlers) PostShow(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.Repo.GetPost(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "post_details.tmpl", gin.H{
		"title": post.Title,
		"post":  post,
	})
}

func (h *Handlers) PostEditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.Repo.GetPost(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	render(c, http.StatusOK, "edit_post_form.tmpl", gin.H{
		"title": "Edit " + post.Title,
		"post":  post,
	})
}

func (h *Handlers) PostUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r := PostRequest{}
	if err := c.ShouldBindWith(&r, binding.FormPost); err != nil {
		if _, lookupErr := h.Repo.GetPost(c.Request.Context(), id); lookupErr != nil {
			fail(c, lookupErr)
			return
		}
		badRequest(c, err)
		return
	}
	post, err := h.Repo.UpdatePost(c.Request.Context(), id, *r.Title, *r.Content)
	if err != nil {
		fail(c, err)
		return
	}
	redirect(c, "/posts/"+strconv.FormatUint(post.ID, 10), fmt.Sprintf(`Post "%s" edited!`, post.Title))
}

func (h *Handlers) PostDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.Repo.DeletePost(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	redirect(c, "/users/"+strconv.FormatUint(post.UserID, 10), fmt.Sprintf(`Post "%s" deleted!`, post.Title))
}
