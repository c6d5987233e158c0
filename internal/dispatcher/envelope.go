package dispatcher

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the uniform response wrapper returned to the invocation
// transport: a status classification plus a JSON body string.
//
// Body layouts:
//   - success:      {"result": <calculation result or error result>}
//   - client error: {"error": <message>}
//   - server error: {"system_error": <message>}
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// ErrorResult is a calculator-level failure payload: exactly one descriptive
// message field, carried inside a success envelope.
type ErrorResult struct {
	Error string `json:"error"`
}

func successEnvelope(result interface{}) Envelope {
	body, err := json.Marshal(map[string]interface{}{"result": result})
	if err != nil {
		return serverErrorEnvelope(fmt.Sprintf("encode result: %v", err))
	}
	return Envelope{StatusCode: http.StatusOK, Body: string(body)}
}

func clientErrorEnvelope(message string) Envelope {
	body, _ := json.Marshal(map[string]string{"error": message})
	return Envelope{StatusCode: http.StatusBadRequest, Body: string(body)}
}

func serverErrorEnvelope(message string) Envelope {
	body, _ := json.Marshal(map[string]string{"system_error": message})
	return Envelope{StatusCode: http.StatusInternalServerError, Body: string(body)}
}
