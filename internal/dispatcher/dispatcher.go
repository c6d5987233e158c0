// Package dispatcher routes a named calculation request to the matching
// calculator and normalizes its output into a result envelope.
package dispatcher

import (
	"context"
	"fmt"
	"time"

	"mortgage-prequal/internal/common/cache"
	apperrors "mortgage-prequal/internal/common/errors"
	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/common/metrics"
	"mortgage-prequal/internal/common/observability"

	"github.com/google/uuid"
)

// Calculator is a pure, stateless computation over a named argument map.
// A returned error is a calculator-level validation or computation failure
// and becomes an ErrorResult inside a success envelope, never a transport
// failure.
type Calculator interface {
	ToolName() string
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, error)
}

// Dispatcher owns the closed tool-name-to-calculator mapping and the
// envelope construction. It holds no per-request state and is safe for
// concurrent use once all calculators are registered.
type Dispatcher struct {
	calculators map[string]Calculator
	timeouts    map[string]time.Duration
	resultCache *cache.ResultCache
	obs         *observability.Observability
	logger      logger.Logger
}

type Option func(*Dispatcher)

// WithResultCache serves repeated identical requests from Redis.
func WithResultCache(rc *cache.ResultCache) Option {
	return func(d *Dispatcher) { d.resultCache = rc }
}

func WithObservability(obs *observability.Observability) Option {
	return func(d *Dispatcher) { d.obs = obs }
}

func New(log logger.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		calculators: make(map[string]Calculator),
		timeouts:    make(map[string]time.Duration),
		logger:      log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register adds a calculator under its tool name. Registration happens once
// at startup; the mapping is read-only afterwards.
func (d *Dispatcher) Register(c Calculator) {
	d.calculators[c.ToolName()] = c
}

// RegisterWithTimeout additionally bounds every execution of the calculator;
// a zero timeout leaves it unbounded.
func (d *Dispatcher) RegisterWithTimeout(c Calculator, timeout time.Duration) {
	d.Register(c)
	if timeout > 0 {
		d.timeouts[c.ToolName()] = timeout
	}
}

// ToolNames returns the registered tool names.
func (d *Dispatcher) ToolNames() []string {
	names := make([]string, 0, len(d.calculators))
	for name := range d.calculators {
		names = append(names, name)
	}
	return names
}

// Dispatch invokes the calculator registered under toolName and wraps its
// outcome in an Envelope. Missing or unrecognized names are client errors and
// no calculator runs; calculator-reported errors travel inside a success
// envelope; only a fault in the dispatch machinery itself yields a server
// error.
func (d *Dispatcher) Dispatch(ctx context.Context, toolName string, args map[string]interface{}) (env Envelope) {
	requestID := uuid.NewString()
	log := d.logger.WithFields(map[string]interface{}{
		"requestId": requestID,
		"toolName":  toolName,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Error("dispatch fault", map[string]interface{}{"panic": r})
			metrics.DispatchRejected.WithLabelValues("fault").Inc()
			if d.obs != nil {
				d.obs.RecordDispatch(ctx, toolName, "fault")
			}
			env = serverErrorEnvelope(fmt.Sprintf("%v", r))
		}
	}()

	if toolName == "" {
		log.Warn("request rejected", map[string]interface{}{"reason": "missing tool name"})
		metrics.DispatchRejected.WithLabelValues("missing_tool_name").Inc()
		return clientErrorEnvelope("Missing tool name")
	}

	calc, ok := d.calculators[toolName]
	if !ok {
		log.Warn("request rejected", map[string]interface{}{"reason": "unknown tool"})
		metrics.DispatchRejected.WithLabelValues("unknown_tool").Inc()
		return clientErrorEnvelope(fmt.Sprintf("Unknown tool '%s'", toolName))
	}

	cacheKey := cache.Key(toolName, args)
	if body, hit := d.resultCache.Get(ctx, cacheKey); hit {
		log.Debug("result served from cache", nil)
		metrics.CacheHits.WithLabelValues(toolName).Inc()
		return Envelope{StatusCode: 200, Body: body}
	}

	execCtx := ctx
	if timeout, ok := d.timeouts[toolName]; ok {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := calc.Execute(execCtx, args)
	elapsed := time.Since(start)

	metrics.CalculationDuration.WithLabelValues(toolName).Observe(elapsed.Seconds())
	if d.obs != nil {
		d.obs.RecordDispatchDuration(ctx, elapsed, toolName)
	}

	if err != nil {
		log.Info("calculator returned error result", map[string]interface{}{
			"errorCode": string(apperrors.CodeOf(err)),
			"error":     err.Error(),
		})
		metrics.CalculationsFailed.WithLabelValues(toolName, string(apperrors.CodeOf(err))).Inc()
		if d.obs != nil {
			d.obs.RecordDispatch(ctx, toolName, "error_result")
		}
		return successEnvelope(ErrorResult{Error: err.Error()})
	}

	metrics.CalculationsCompleted.WithLabelValues(toolName).Inc()
	if d.obs != nil {
		d.obs.RecordDispatch(ctx, toolName, "completed")
	}

	env = successEnvelope(out)
	if env.StatusCode == 200 {
		d.resultCache.Set(ctx, cacheKey, env.Body)
	}
	return env
}
