package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const CacheNoCache = 0

// CacheRouter sets the cache-control header on every response it handles
type CacheRouter struct {
	CacheTime time.Duration // defaults to CacheNoCache = 0
}

func (cr *CacheRouter) Handler() gin.HandlerFunc {
	header := "no-cache"
	if cr.CacheTime > CacheNoCache {
		header = "public, max-age=" + strconv.Itoa(int(cr.CacheTime/time.Second))
	}
	return func(c *gin.Context) {
		c.Header("cache-control", header)
		c.Next()
	}
}
