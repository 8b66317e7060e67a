package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sobara/commentbox/util"
	"github.com/sobara/commentbox/util/tracing"
)

// ServerResponse is the single envelope every handler returns.
type ServerResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"-"`
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

// writeErrorResponse is used outside the Handler adapter, mainly by
// middleware that has no ServerResponse to return.
func writeErrorResponse(w http.ResponseWriter, err error, status, message string) {
	log.Println(status, message, err)

	resp := ServerResponse{
		Status:     status,
		Message:    message,
		StatusCode: util.StatusCode(status),
	}
	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

func respondWithError(err error, message, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Println("request", tc.RequestID, status, message, err)
	} else {
		log.Println("request", tc.RequestID, status, message)
	}

	return &ServerResponse{
		Status:     status,
		Message:    message,
		StatusCode: util.StatusCode(status),
	}
}
