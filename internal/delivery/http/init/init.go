package http_init

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	RegisterRoutes(router *gin.RouterGroup)
}

type ControllerPool struct {
	pool   []Controller
	rg     *gin.RouterGroup
	engine *gin.Engine
	server *http.Server
}

func NewControllerPool() *ControllerPool {
	engine := gin.Default()
	rg := engine.Group("/")
	return &ControllerPool{
		pool:   make([]Controller, 0, 10),
		rg:     rg,
		engine: engine,
	}
}

func (pool *ControllerPool) Add(c Controller) {
	pool.pool = append(pool.pool, c)
}

func (pool *ControllerPool) Register() {
	for _, c := range pool.pool {
		c.RegisterRoutes(pool.rg)
	}
}

func (pool *ControllerPool) Run(host, port string) error {
	pool.server = &http.Server{
		Addr:    host + ":" + port,
		Handler: pool.engine,
	}
	return pool.server.ListenAndServe()
}

func (pool *ControllerPool) Shutdown(ctx context.Context) error {
	if pool.server == nil {
		return nil
	}
	return pool.server.Shutdown(ctx)
}
