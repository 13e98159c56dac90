// Package controller provides the HTTP request handlers of the census API:
// health, admin check and the participant resource.
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// IndexController serves the unauthenticated health endpoints.
type IndexController struct{}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	g.GET("/", a.status)
	g.GET("/status", a.status)
	return a
}

func (a *IndexController) status(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"authHeaderPresent": auth != "",
		"authHeaderIsBasic": strings.HasPrefix(auth, "Basic "),
		"uptimeSeconds":     int(time.Since(startTime).Seconds()),
	})
}
