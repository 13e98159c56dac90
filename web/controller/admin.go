package controller

import (
	"net/http"

	"census-api/web/middleware"

	"github.com/gin-gonic/gin"
)

// AdminController exposes the authenticated smoke-test endpoint.
type AdminController struct{}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	g.GET("/admin/test", a.test)
	return a
}

func (a *AdminController) test(c *gin.Context) {
	admin, _ := middleware.GetAdmin(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin access granted",
		"admin":   admin,
	})
}
