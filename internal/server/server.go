package server

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/firesim/retirement-simulator/internal/calculation"
	"github.com/firesim/retirement-simulator/internal/config"
	"github.com/firesim/retirement-simulator/internal/domain"
)

// Server exposes the simulation engine over HTTP:
//
//	POST /v1/simulate  run one scenario, respond with its ledger and verdict
//	POST /v1/search    run one scenario, respond with the verdict only
//	GET  /healthz      liveness probe
//
// Requests are validated with the same rules as configuration files, so a
// scenario rejected here would also be rejected by the CLI.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger *zap.Logger
}

// New builds a server around a fresh engine. A nil logger disables logging.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine: calculation.NewCalculationEngine(),
		parser: config.NewInputParser(),
		logger: logger,
	}
}

// SimulateRequest is the body of POST /v1/simulate and POST /v1/search.
// TaxPolicy may be omitted to simulate under the default bracket tables.
type SimulateRequest struct {
	TaxPolicy *domain.TaxPolicy `json:"tax_policy,omitempty"`
	Scenario  domain.Scenario   `json:"scenario"`
}

// SimulateResponse carries the full scenario result.
type SimulateResponse struct {
	RequestID string                `json:"request_id"`
	Result    domain.ScenarioResult `json:"result"`
}

// SearchResponse carries only the earliest-retirement verdict.
type SearchResponse struct {
	RequestID string         `json:"request_id"`
	Name      string         `json:"name"`
	Verdict   domain.Verdict `json:"verdict"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &fasthttp.Server{
		Handler: s.Handler,
		Name:    "firesim",
	}
	return srv.ListenAndServe(addr)
}

// Handler routes one request. Every request is assigned a UUID, echoed in
// the X-Request-ID response header and attached to its access log line.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	requestID := uuid.NewString()
	ctx.Response.Header.Set("X-Request-ID", requestID)

	s.route(ctx, requestID)

	s.logger.Info("request",
		zap.String("request_id", requestID),
		zap.ByteString("method", ctx.Method()),
		zap.ByteString("path", ctx.Path()),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("duration", time.Since(start)),
	)
}

func (s *Server) route(ctx *fasthttp.RequestCtx, requestID string) {
	switch string(ctx.Path()) {
	case "/healthz":
		if !ctx.IsGet() {
			s.writeError(ctx, requestID, fasthttp.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/v1/simulate":
		s.handleSimulate(ctx, requestID)
	case "/v1/search":
		s.handleSearch(ctx, requestID)
	default:
		s.writeError(ctx, requestID, fasthttp.StatusNotFound, "not found")
	}
}

func (s *Server) handleSimulate(ctx *fasthttp.RequestCtx, requestID string) {
	cfg, ok := s.decodeScenario(ctx, requestID)
	if !ok {
		return
	}

	result, err := s.engine.RunScenario(ctx, cfg, &cfg.Scenarios[0])
	if err != nil {
		s.logger.Error("simulation failed", zap.String("request_id", requestID), zap.Error(err))
		s.writeError(ctx, requestID, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, SimulateResponse{
		RequestID: requestID,
		Result:    *result,
	})
}

func (s *Server) handleSearch(ctx *fasthttp.RequestCtx, requestID string) {
	cfg, ok := s.decodeScenario(ctx, requestID)
	if !ok {
		return
	}

	result, err := s.engine.RunScenario(ctx, cfg, &cfg.Scenarios[0])
	if err != nil {
		s.logger.Error("search failed", zap.String("request_id", requestID), zap.Error(err))
		s.writeError(ctx, requestID, fasthttp.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(ctx, fasthttp.StatusOK, SearchResponse{
		RequestID: requestID,
		Name:      result.Name,
		Verdict:   result.Verdict,
	})
}

// decodeScenario parses and validates the request body into a one-scenario
// configuration. On failure it writes the error response and returns false.
func (s *Server) decodeScenario(ctx *fasthttp.RequestCtx, requestID string) (*domain.Configuration, bool) {
	if !ctx.IsPost() {
		s.writeError(ctx, requestID, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}

	var req SimulateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}

	cfg := &domain.Configuration{Scenarios: []domain.Scenario{req.Scenario}}
	if req.TaxPolicy != nil {
		cfg.TaxPolicy = *req.TaxPolicy
	}
	if err := s.parser.ValidateConfiguration(cfg); err != nil {
		s.writeError(ctx, requestID, fasthttp.StatusBadRequest, err.Error())
		return nil, false
	}
	return cfg, true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"message":"response encoding failed"}`)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, requestID string, status int, message string) {
	s.writeJSON(ctx, status, ErrorResponse{
		Status:    status,
		Message:   message,
		RequestID: requestID,
	})
}
