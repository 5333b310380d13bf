package session

import (
	"blogly/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticesAreReadOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.OpenDB(t)
	router := gin.New()
	router.Use(Middleware(NewStore(db, false, []byte("secret"), 60)))
	router.POST("/add", func(c *gin.Context) {
		s := LoadSession(c)
		s.AddNotice("first")
		s.AddNotice("second")
		require.NoError(t, s.Save())
		c.Status(http.StatusSeeOther)
	})
	router.GET("/read", func(c *gin.Context) {
		notices, err := LoadSession(c).Notices()
		require.NoError(t, err)
		c.String(http.StatusOK, strings.Join(notices, ","))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	var rows int64
	require.NoError(t, db.Table("sessions").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	read := func() string {
		req := httptest.NewRequest(http.MethodGet, "/read", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Body.String()
	}
	assert.Equal(t, "first,second", read())
	assert.Equal(t, "", read())
}

func TestNoticesWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware(NewStore(testutil.OpenDB(t), false, []byte("secret"), 60)))
	router.GET("/read", func(c *gin.Context) {
		notices, err := LoadSession(c).Notices()
		require.NoError(t, err)
		c.JSON(http.StatusOK, notices)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/read", nil))
	assert.Equal(t, "null", w.Body.String())
	assert.Empty(t, w.Result().Cookies())
}
