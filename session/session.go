package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const CookieName = "blogly"

type Session struct {
	sessions.Session
}

// NewStore keeps sessions in the database next to users and posts
func NewStore(db *gorm.DB, cleanup bool, secret []byte, maxAge int) sessions.Store {
	store := gormsessions.NewStore(db, cleanup, secret)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return store
}

func Middleware(store sessions.Store) gin.HandlerFunc {
	return sessions.Sessions(CookieName, store)
}

func LoadSession(c *gin.Context) *Session {
	return &Session{
		Session: sessions.Default(c),
	}
}

// AddNotice queues a message for the next rendered page.
// Call Save once after the last notice of the request.
func (s *Session) AddNotice(message string) {
	s.AddFlash(message)
}

// Notices returns and forgets everything queued by AddNotice
func (s *Session) Notices() ([]string, error) {
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return nil, nil
	}
	result := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		if message, ok := flash.(string); ok {
			result = append(result, message)
		}
	}
	return result, s.Save()
}
