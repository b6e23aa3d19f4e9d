package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-assistant/internal/agent"
	agentHTTP "todo-assistant/internal/agent/delivery/http"
	tgDelivery "todo-assistant/internal/agent/delivery/telegram"
	"todo-assistant/pkg/log"
	"todo-assistant/pkg/ratelimit"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	assistant agentHTTP.Assistant
	registry  *agent.ToolRegistry
	limiter   *ratelimit.Limiter

	// Telegram delivery, optional
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Chat domain
	Assistant agentHTTP.Assistant
	Registry  *agent.ToolRegistry
	// Limiter throttles POST /api/v1/chat. Nil disables rate limiting.
	Limiter *ratelimit.Limiter

	// Telegram delivery, optional
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:               logger,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		assistant:       cfg.Assistant,
		registry:        cfg.Registry,
		limiter:         cfg.Limiter,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	srv.gin = gin.New()
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistant == nil {
		return errors.New("assistant is required")
	}
	if srv.registry == nil {
		return errors.New("tool registry is required")
	}
	return nil
}
