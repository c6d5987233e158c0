// Package gateway is the lambda-style HTTP invocation transport: it extracts
// a gateway-qualified tool name and an argument map from the request and
// hands them to the dispatcher.
package gateway

import (
	"encoding/json"
	"net/http"

	"mortgage-prequal/internal/common/logger"
	"mortgage-prequal/internal/dispatcher"
)

// ToolNameHeader carries the gateway-qualified tool identifier, e.g.
// "LambdaTarget___calculate_gds_tds". It takes precedence over the body field.
const ToolNameHeader = "X-Gateway-Tool-Name"

type Server struct {
	dispatcher *dispatcher.Dispatcher
	logger     logger.Logger
}

type invokeRequest struct {
	ToolName  string                 `json:"toolName"`
	Arguments map[string]interface{} `json:"arguments"`
}

func New(d *dispatcher.Dispatcher, log logger.Logger) *Server {
	return &Server{dispatcher: d, logger: log}
}

// Handler returns the gateway's HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/invoke", s.handleInvoke)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	qualified := r.Header.Get(ToolNameHeader)
	if qualified == "" {
		qualified = req.ToolName
	}
	toolName := dispatcher.ResolveToolName(qualified)

	env := s.dispatcher.Dispatch(r.Context(), toolName, req.Arguments)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	_, _ = w.Write([]byte(env.Body))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
