package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	CacheNoCache = 0
	CacheCustom  = -1
)

// CacheRouter sets cache-control on every response.
// Pages show data that any POST may change, so everything defaults to no-cache, and redirects are never cached
type CacheRouter struct {
	CacheTime int // defaults to CacheNoCache = 0
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	value := cr.headerValue()
	return func(c *gin.Context) {
		if value != "" {
			if c.Request.Method == http.MethodPost {
				c.Header("cache-control", "no-store")
			} else {
				c.Header("cache-control", value)
			}
		}
		c.Next()
	}
}

func (cr *CacheRouter) headerValue() string {
	switch cr.CacheTime {
	case CacheCustom:
		return ""
	case CacheNoCache:
		return "no-cache"
	}
	return "private, max-age=" + strconv.Itoa(cr.CacheTime)
}
