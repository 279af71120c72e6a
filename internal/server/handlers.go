package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/lgbarn/kiaak-go/internal/config"
	errs "github.com/lgbarn/kiaak-go/internal/errors"
	"github.com/lgbarn/kiaak-go/internal/notation"
	"github.com/lgbarn/kiaak-go/internal/output"
	"github.com/lgbarn/kiaak-go/internal/processing"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// Handler serves the parsing endpoints.
type Handler struct {
	cfg   *config.Config
	cache *lru.Cache // move text -> parsed; nil when disabled
}

// parsed is a memoised result of notation.Parse.
type parsed struct {
	move notation.Move
	rest string
	err  error
}

// NewHandler creates a Handler using cfg for record defaults and the size
// of the move cache.
func NewHandler(cfg *config.Config) *Handler {
	h := &Handler{cfg: cfg}
	if cfg.CacheSize > 0 {
		cache, err := lru.New(cfg.CacheSize)
		if err != nil {
			cfg.Logf(config.LevelError, "move cache disabled: %v", err)
		} else {
			h.cache = cache
		}
	}
	return h
}

// parse decodes one move, consulting the cache first. Decoding is pure, so
// failures are cached too.
func (h *Handler) parse(text string) parsed {
	if h.cache != nil {
		if v, ok := h.cache.Get(text); ok {
			return v.(parsed)
		}
	}
	m, rest, err := notation.Parse(text)
	p := parsed{move: m, rest: rest, err: err}
	if h.cache != nil {
		h.cache.Add(text, p)
	}
	return p
}

// CacheLen returns the number of cached moves.
func (h *Handler) CacheLen() int {
	if h.cache == nil {
		return 0
	}
	return h.cache.Len()
}

// ParseMoveRequest is the body of POST /parse.
type ParseMoveRequest struct {
	Move string `json:"move"`
}

// ParseMoveResponse is a decoded move and what was left unread.
type ParseMoveResponse struct {
	RequestID string        `json:"requestId"`
	Kind      notation.Kind `json:"kind"`
	Move      notation.Move `json:"move"`
	Rest      string        `json:"rest"`
}

// ParseRecordRequest is the body of POST /record. Unset options fall back
// to the server configuration.
type ParseRecordRequest struct {
	Text           string `json:"text"`
	Name           string `json:"name"`
	KeepGoing      *bool  `json:"keepGoing"`
	NormalizeWidth *bool  `json:"normalizeWidth"`
}

// ParseRecordResponse is a parsed record with its statistics.
type ParseRecordResponse struct {
	RequestID string             `json:"requestId"`
	Record    *output.JSONRecord `json:"record"`
	Stats     *output.JSONStats  `json:"stats"`
	Error     *ErrorResponse     `json:"error,omitempty"`
}

// ErrorResponse describes a parse failure.
type ErrorResponse struct {
	RequestID string `json:"requestId,omitempty"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Line      int    `json:"line,omitempty"`
	Column    int    `json:"column,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Got       string `json:"got,omitempty"`
}

func newErrorResponse(c *fiber.Ctx, err error) *ErrorResponse {
	resp := &ErrorResponse{
		RequestID: requestID(c),
		Kind:      errs.Kind(err),
		Message:   err.Error(),
	}
	var pe *errs.ParseError
	if errors.As(err, &pe) {
		resp.Line = pe.Line
		resp.Column = pe.Column
		resp.Expected = pe.Expected
		resp.Got = pe.Got
	}
	return resp
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(&ErrorResponse{
		RequestID: requestID(c),
		Kind:      "BadRequest",
		Message:   msg,
	})
}

// Healthz reports that the server is up.
func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"requestId": requestID(c),
	})
}

// ParseMove decodes one move from the start of the body's move text.
func (h *Handler) ParseMove(c *fiber.Ctx) error {
	var req ParseMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Move == "" {
		return badRequest(c, "move is required")
	}

	p := h.parse(req.Move)
	if p.err != nil {
		h.cfg.Logf(config.LevelDebug, "%s parse %q: %v", requestID(c), req.Move, p.err)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(newErrorResponse(c, p.err))
	}
	return c.JSON(&ParseMoveResponse{
		RequestID: requestID(c),
		Kind:      p.move.Kind,
		Move:      p.move,
		Rest:      p.rest,
	})
}

// ParseRecord decodes a whole move list. Moves read before a failure are
// returned alongside the error.
func (h *Handler) ParseRecord(c *fiber.Ctx) error {
	var req ParseRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err.Error())
	}

	opts := record.Options{
		File:           req.Name,
		KeepGoing:      h.cfg.KeepGoing,
		NormalizeWidth: h.cfg.NormalizeWidth,
	}
	if req.KeepGoing != nil {
		opts.KeepGoing = *req.KeepGoing
	}
	if req.NormalizeWidth != nil {
		opts.NormalizeWidth = *req.NormalizeWidth
	}

	rec, err := record.Parse(req.Text, opts)
	resp := &ParseRecordResponse{
		RequestID: requestID(c),
		Record:    output.RecordToJSON(rec),
		Stats:     output.StatsToJSON(processing.Analyze(rec)),
	}
	if err != nil {
		resp.Error = newErrorResponse(c, firstError(rec, err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(resp)
	}
	return c.JSON(resp)
}

// firstError picks the first failure of a record so its location can be
// reported; the joined error of a KeepGoing parse has none of its own.
func firstError(rec *record.Record, err error) error {
	if rec != nil && len(rec.Errors) > 0 {
		return rec.Errors[0]
	}
	return err
}
