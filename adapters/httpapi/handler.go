// Package httpapi exposes one local Suplock session as a JSON API.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/luca-patrignani/suplock/application"
	"github.com/luca-patrignani/suplock/domain/suplock"
	"github.com/luca-patrignani/suplock/ledger"
)

// Session is the part of the orchestrator the API needs.
type Session interface {
	State() suplock.GameState
	NewMatch() (suplock.GameState, error)
	Advance() (suplock.GameState, error)
	Play(cardID string) (suplock.GameState, error)
	ResolveCombat() (suplock.GameState, error)
	MatchHistory() (matchID string, blocks []ledger.Block)
}

type Handler struct {
	session Session
	logger  *slog.Logger
}

func NewHandler(session Session, logger *slog.Logger) *Handler {
	return &Handler{session: session, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/match", h.GetMatch)
	e.POST("/v1/match", h.NewMatch)
	e.POST("/v1/match/advance", h.Advance)
	e.POST("/v1/match/play", h.Play)
	e.POST("/v1/match/combat", h.Combat)
	e.GET("/v1/match/history", h.History)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetMatch(c echo.Context) error {
	return h.respond(c, h.session.State(), nil)
}

func (h *Handler) NewMatch(c echo.Context) error {
	s, err := h.session.NewMatch()
	return h.respond(c, s, err)
}

func (h *Handler) Advance(c echo.Context) error {
	s, err := h.session.Advance()
	return h.respond(c, s, err)
}

func (h *Handler) Play(c echo.Context) error {
	var req PlayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	req.CardID = strings.TrimSpace(req.CardID)
	if req.CardID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "card_id is required"})
	}
	s, err := h.session.Play(req.CardID)
	return h.respond(c, s, err)
}

func (h *Handler) Combat(c echo.Context) error {
	s, err := h.session.ResolveCombat()
	return h.respond(c, s, err)
}

func (h *Handler) History(c echo.Context) error {
	matchID, blocks := h.session.MatchHistory()
	c.Set(ctxMatchID, matchID)
	return c.JSON(http.StatusOK, HistoryResponse{MatchID: matchID, Blocks: blocks})
}

// respond writes the match state. Engine rejections are not HTTP errors: the
// request succeeds with the unchanged state and the reason attached.
func (h *Handler) respond(c echo.Context, s suplock.GameState, err error) error {
	requestID, _ := c.Get(ctxRequestID).(string)
	c.Set(ctxMatchID, s.MatchID.String())
	resp := MatchResponse{State: s, RequestID: requestID}
	if err != nil {
		if !isRejection(err) {
			return h.mapError(c, err)
		}
		resp.Rejected = err.Error()
		c.Set(ctxRejected, resp.Rejected)
	}
	return c.JSON(http.StatusOK, resp)
}

func isRejection(err error) bool {
	return errors.Is(err, suplock.ErrWrongPhase) ||
		errors.Is(err, suplock.ErrUnknownCard) ||
		errors.Is(err, suplock.ErrInsufficientYield) ||
		errors.Is(err, suplock.ErrMatchOver) ||
		errors.Is(err, suplock.ErrUnknownAction)
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get(ctxRequestID).(string)

	switch {
	case errors.Is(err, application.ErrClosed):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
