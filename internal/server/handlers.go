package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maine/historical_times/internal/layout"
	"github.com/maine/historical_times/internal/press"
)

// Слоты по умолчанию соответствуют двум модальным окнам страницы.
const (
	defaultContextSlot = "context-modal"
	defaultFootageSlot = "video-modal"
)

type editionResponse struct {
	Edition press.Edition `json:"edition"`
	Layout  layout.Layout `json:"layout"`
}

type contextRequest struct {
	Topic string `json:"topic"`
	Slot  string `json:"slot"`
}

type contextResponse struct {
	Topic   string `json:"topic"`
	Context string `json:"context"`
	Current bool   `json:"current"`
}

type footageRequest struct {
	EventTitle string `json:"event_title"`
	Prompt     string `json:"prompt"`
	Slot       string `json:"slot"`
}

type footageResponse struct {
	EventTitle string `json:"event_title"`
	Status     string `json:"status"`
	Current    bool   `json:"current"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleEdition отдаёт полный выпуск со свёрстанными полосами. Сбои генерации
// уже поглощены шлюзом; ошибка здесь — единственное место, где страница
// получает повторяемое состояние «попробуйте ещё раз».
func (s *Server) handleEdition(c echo.Context) error {
	edition, err := s.orch.LoadDailyContent(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load historical content. Please try again later.")
	}

	s.orch.ResolveEditionImages(c.Request().Context(), &edition)

	return c.JSON(http.StatusOK, editionResponse{
		Edition: edition,
		Layout:  layout.Build(edition.Events, s.orch.Categories()),
	})
}

func (s *Server) handleContext(c echo.Context) error {
	var req contextRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Topic == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "topic is required")
	}
	if req.Slot == "" {
		req.Slot = defaultContextSlot
	}

	text, current := s.orch.RequestContext(c.Request().Context(), req.Slot, req.Topic)

	return c.JSON(http.StatusOK, contextResponse{
		Topic:   req.Topic,
		Context: text,
		Current: current,
	})
}

func (s *Server) handleFootage(c echo.Context) error {
	var req footageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EventTitle == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event_title is required")
	}
	if req.Slot == "" {
		req.Slot = defaultFootageSlot
	}

	status, current := s.orch.RequestMedia(c.Request().Context(), req.Slot, req.EventTitle, req.Prompt)

	return c.JSON(http.StatusOK, footageResponse{
		EventTitle: req.EventTitle,
		Status:     status,
		Current:    current,
	})
}
