package server

import (
	"github.com/gin-gonic/gin"

	"pricenorm/internal/config"
	"pricenorm/internal/server/handlers"
	"pricenorm/internal/service/pipeline"
)

// Server HTTP服务器
type Server struct {
	router *gin.Engine
	h      *handlers.Handlers
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	runner, err := pipeline.NewRunner(cfg)
	if err != nil {
		return nil, err
	}

	s := &Server{
		router: gin.Default(),
		h:      handlers.NewHandlers(runner),
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.POST("/normalize", s.h.Normalize)
		api.GET("/download/:exportId", s.h.Download)
	}
}

// Router 返回底层路由（测试用）
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
