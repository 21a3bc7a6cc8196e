package web

import (
	"net/http"

	"postboard/handlers"
	"postboard/posts"
	"postboard/templates"

	"github.com/gin-gonic/gin"
)

// Register loads the views and adds every page route to the router.
// A sessions middleware must already be installed on the router.
func Register(router *gin.Engine, service *posts.Service, hub *handlers.Hub) error {
	views, err := templates.Load()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(views)

	h := &PostHandlers{Service: service}
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/posts")
	})
	router.GET("/posts", h.Index)
	router.POST("/posts", h.Create)
	router.GET("/posts/new", h.New)
	router.GET("/posts/live", hub.ServeWS)
	router.GET("/posts/:id", h.Show)
	router.GET("/posts/:id/edit", h.Edit)
	router.PATCH("/posts/:id", h.Update)
	router.DELETE("/posts/:id", h.Delete)
	// Misc
	router.GET("/robots.txt", DisallowRobots)
	return nil
}
