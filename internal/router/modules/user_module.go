package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdrasaq14/payever-test/internal/container"
	handlers "github.com/abdrasaq14/payever-test/internal/interface/http"
	"github.com/abdrasaq14/payever-test/internal/interface/middleware"
)

// UserModule wires the user and avatar endpoints:
// POST /api/users, GET /api/user/:userId,
// POST/GET/DELETE /api/user/:userId/avatar.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Throttle the write paths per IP; reads stay unthrottled.
	createLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP(), nil)
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users", createLimiter, m.Handler.Create)
	rg.GET("/user/:userId", m.Handler.Get)

	rg.POST("/user/:userId/avatar", uploadLimiter, m.Handler.UploadAvatar)
	rg.GET("/user/:userId/avatar", m.Handler.GetAvatar)
	rg.DELETE("/user/:userId/avatar", uploadLimiter, m.Handler.DeleteAvatar)
}
