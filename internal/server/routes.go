package server

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"sueca-game/internal/ai"
	"sueca-game/internal/database"
	"sueca-game/internal/protocol"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// ResultReader serves the results API.
type ResultReader interface {
	GetAll() ([]database.GameResult, error)
	GetByID(id string) (database.GameResult, error)
	GetByPlayer(name string) ([]database.GameResult, error)
}

// RouterConfig holds what the HTTP routes serve. Nil parts are not routed.
type RouterConfig struct {
	Hub       *Hub
	Results   ResultReader
	StaticDir string
	Logger    *zap.Logger
}

type handlers struct {
	results ResultReader
	log     *zap.Logger
}

// NewRouter builds the echo instance with the websocket endpoint, the results
// API, the AI service and the static files.
func NewRouter(cfg RouterConfig) *echo.Echo {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := handlers{results: cfg.Results, log: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/health", h.health)
	e.POST("/play", h.play)

	if cfg.Results != nil {
		e.GET("/api/results", h.getResults)
		e.GET("/api/results/:id", h.getResultByID)
		e.GET("/api/results/player/:name", h.getResultsByPlayer)
	}
	if cfg.Hub != nil {
		e.GET("/ws", func(c echo.Context) error {
			ServeWs(cfg.Hub, c.Response(), c.Request())
			return nil
		})
	}
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}
	return e
}

func (h handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// play answers the remote AI contract with the local heuristic.
func (h handlers) play(c echo.Context) error {
	var req protocol.AIPlayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	v, err := ai.ViewFromRequest(req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	i := ai.Choose(v, nil)
	if i == ai.NoCard {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "no legal moves"})
	}
	return c.JSON(http.StatusOK, protocol.AIPlayResponse{
		Play:   v.Hand[i].Code(),
		Reason: fmt.Sprintf("%s heuristic", v.Difficulty),
	})
}

func (h handlers) getResults(c echo.Context) error {
	results, err := h.results.GetAll()
	if err != nil {
		h.log.Error("failed to fetch results", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch results")
	}
	if results == nil {
		results = []database.GameResult{}
	}
	return c.JSON(http.StatusOK, results)
}

func (h handlers) getResultByID(c echo.Context) error {
	result, err := h.results.GetByID(c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "Result not found")
	}
	if err != nil {
		h.log.Error("failed to fetch result", zap.String("id", c.Param("id")), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch result")
	}
	return c.JSON(http.StatusOK, result)
}

func (h handlers) getResultsByPlayer(c echo.Context) error {
	player := c.Param("name")
	if player == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Player name is required")
	}
	results, err := h.results.GetByPlayer(player)
	if errors.Is(err, sql.ErrNoRows) {
		return echo.NewHTTPError(http.StatusNotFound, "No results found for player")
	}
	if err != nil {
		h.log.Error("failed to fetch results", zap.String("player", player), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch results")
	}
	return c.JSON(http.StatusOK, results)
}
