package handlers

import (
	"blogly/models"
	"blogly/session"
	"blogly/utils"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Repo models.Repository
}

func New(repo models.Repository) *Handlers {
	return &Handlers{Repo: repo}
}

// Register adds every page of the application to the router
func (h *Handlers) Register(router *gin.Engine) {
	router.GET("/", Home)
	// Users
	router.GET("/users", h.UserList)
	router.GET("/users/new", h.UserNewForm)
	router.POST("/users/new", h.UserCreate)
	router.GET("/users/:id", h.UserShow)
	router.GET("/users/:id/edit", h.UserEditForm)
	router.POST("/users/:id/edit", h.UserUpdate)
	router.POST("/users/:id/delete", h.UserDelete)
	// Posts
	router.GET("/users/:id/posts/new", h.PostNewForm)
	router.POST("/users/:id/posts/new", h.PostCreate)
	router.GET("/posts/:id", h.PostShow)
	router.GET("/posts/:id/edit", h.PostEditForm)
	router.POST("/posts/:id/edit", h.PostUpdate)
	router.POST("/posts/:id/delete", h.PostDelete)

	router.NoRoute(NotFound)
}

func Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/users")
}

func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "error.tmpl", gin.H{
		"title":   "Not Found",
		"message": "The page you are looking for does not exist.",
	})
}

// render shows a page together with any notices left by the previous request
func render(c *gin.Context, status int, name string, data gin.H) {
	notices, err := session.LoadSession(c).Notices()
	if err != nil {
		log.Printf("[%s] cannot clear notices: %v", utils.RequestID(c), err)
	}
	data["notices"] = notices
	c.HTML(status, name, data)
}

// redirect goes to location, optionally leaving a notice for the next page
func redirect(c *gin.Context, location, notice string) {
	if notice != "" {
		s := session.LoadSession(c)
		s.AddNotice(notice)
		if err := s.Save(); err != nil {
			log.Printf("[%s] cannot save notice: %v", utils.RequestID(c), err)
		}
	}
	c.Redirect(http.StatusSeeOther, location)
}

func badRequest(c *gin.Context, err error) {
	render(c, http.StatusBadRequest, "error.tmpl", gin.H{
		"title":   "Bad Request",
		"message": err.Error(),
	})
}

// fail turns a repository error into a 404 or a logged 500 page
func fail(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNotFound) {
		NotFound(c)
		return
	}
	log.Printf("[%s] %s %s: %v", utils.RequestID(c), c.Request.Method, c.Request.URL.Path, err)
	render(c, http.StatusInternalServerError, "error.tmpl", gin.H{
		"title":   "Server Error",
		"message": "Something went wrong, please try again later.",
	})
}

// pathID reads the :id parameter; anything but a positive integer is a missing page
func pathID(c *gin.Context) (uint64, bool) {
	r := IDRequest{}
	if err := c.ShouldBindUri(&r); err != nil {
		NotFound(c)
		return 0, false
	}
	return uint64(r.ID), true
}
