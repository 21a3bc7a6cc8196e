package main

import (
	"log"
	"net/http"
	"time"

	"postboard/config"
	"postboard/db"
	"postboard/handlers"
	"postboard/models"
	"postboard/posts"
	"postboard/utils"
	"postboard/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	sessionCookieName     = "postboard"
	sessionExpirationTime = 86400 // 1 day, only used for flash messages
	staticCacheTime       = time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("Database: %v", err)
	}
	if err = models.Init(gdb); err != nil {
		log.Fatalf("Database: %v", err)
	}
	hub := handlers.NewHub()
	service := posts.NewService(models.NewPostStore(gdb), hub)

	router, err := setupRouter(cfg, gdb, service, hub)
	if err != nil {
		log.Fatalf("Router: %v", err)
	}
	// Method override has to run before gin picks a route
	handler := utils.MethodOverride(router)
	if len(cfg.TLSDomains) > 0 {
		err = autotls.Run(handler, cfg.TLSDomains...)
	} else {
		log.Printf("Server is running on %s", cfg.Addr())
		server := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}
		err = server.ListenAndServe()
	}
	log.Fatalf("Server stopped: %v", err)
}

func setupRouter(cfg config.Config, gdb *gorm.DB, service *posts.Service, hub *handlers.Hub) (*gin.Engine, error) {
	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if cfg.DebugMode {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	if !cfg.DebugMode {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/posts/live"})))
	}

	cookieStore := gormsessions.NewStore(gdb, true, []byte(cfg.SessionKey))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime, HttpOnly: true})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))

	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, static files override that
	router.Group("/static", (&utils.CacheRouter{CacheTime: staticCacheTime}).Handler()).Static("/", cfg.StaticDir)

	if err := web.Register(router, service, hub); err != nil {
		return nil, err
	}
	return router, nil
}
