package web

import (
	"log"
	"net/http"

	"postboard/handlers"
	"postboard/posts"

	"github.com/gin-gonic/gin"
)

type PostHandlers struct {
	Service *posts.Service
}

func wantsJSON(c *gin.Context) bool {
	return c.Query("format") == "json"
}

func serverError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	if wantsJSON(c) {
		c.JSON(http.StatusInternalServerError, handlers.DBErrorResponse)
		return
	}
	c.HTML(http.StatusInternalServerError, "error.tmpl", gin.H{
		"title": "Error",
		"error": "We could not reach the posts right now, please try again.",
	})
}

func (h *PostHandlers) Index(c *gin.Context) {
	list, err := h.Service.GetAllPosts(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	if wantsJSON(c) {
		if list == nil {
			list = []posts.PostView{}
		}
		c.JSON(http.StatusOK, list)
		return
	}
	// Live refreshes may come from another tab, leave the flashes for the page that asked for them
	var flashes []string
	if c.Query("refresh") != "live" {
		flashes = LoadSession(c).TakeFlashes()
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"posts":   list,
		"flashes": flashes,
	})
}

func (h *PostHandlers) New(c *gin.Context) {
	c.HTML(http.StatusOK, "new.tmpl", gin.H{"title": "New post"})
}

func (h *PostHandlers) Create(c *gin.Context) {
	username, hasUsername := c.GetPostForm("username")
	content, hasContent := c.GetPostForm("content")
	if !hasUsername || !hasContent {
		h.badNewPost(c, username, content)
		return
	}
	_, err := h.Service.CreatePost(c.Request.Context(), posts.NewPostInput{
		Username: username,
		Content:  content,
	})
	if err != nil {
		serverError(c, err)
		return
	}
	LoadSession(c).Flash("Post created")
	c.Redirect(http.StatusSeeOther, "/posts")
}

func (h *PostHandlers) badNewPost(c *gin.Context, username, content string) {
	if wantsJSON(c) {
		c.JSON(http.StatusBadRequest, handlers.MissingFieldsResponse)
		return
	}
	c.HTML(http.StatusBadRequest, "new.tmpl", gin.H{
		"title":    "New post",
		"error":    handlers.MissingFieldsResponse.Error,
		"username": username,
		"content":  content,
	})
}

// showPost renders a single post with the given template. A missing post is a 404 with an empty state
func (h *PostHandlers) showPost(c *gin.Context, template string) {
	post, err := h.Service.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		serverError(c, err)
		return
	}
	status := http.StatusOK
	if post == nil {
		status = http.StatusNotFound
	}
	if wantsJSON(c) {
		if post == nil {
			c.JSON(status, handlers.NotFoundResponse)
			return
		}
		c.JSON(status, post)
		return
	}
	c.HTML(status, template, gin.H{"post": post})
}

func (h *PostHandlers) Show(c *gin.Context) {
	h.showPost(c, "single.tmpl")
}

func (h *PostHandlers) Edit(c *gin.Context) {
	h.showPost(c, "edit.tmpl")
}

func (h *PostHandlers) Update(c *gin.Context) {
	content, ok := c.GetPostForm("content")
	if !ok {
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, handlers.MissingContentResponse)
			return
		}
		c.HTML(http.StatusBadRequest, "error.tmpl", gin.H{"title": "Error", "error": handlers.MissingContentResponse.Error})
		return
	}
	if err := h.Service.EditPostContent(c.Request.Context(), c.Param("id"), content); err != nil {
		serverError(c, err)
		return
	}
	LoadSession(c).Flash("Post updated")
	c.Redirect(http.StatusSeeOther, "/posts")
}

func (h *PostHandlers) Delete(c *gin.Context) {
	if err := h.Service.RemovePost(c.Request.Context(), c.Param("id")); err != nil {
		serverError(c, err)
		return
	}
	LoadSession(c).Flash("Post deleted")
	c.Redirect(http.StatusSeeOther, "/posts")
}
