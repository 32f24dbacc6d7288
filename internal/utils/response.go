package utils

import (
	"encoding/json"
	"net/http"

	"TRAVELPLANNER_BACK-END/internal/apperr"
)

// Envelope wraps every API response
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes {success:true, data, message?}
func WriteSuccess(w http.ResponseWriter, status int, data any, message string) {
	WriteJSONResponse(w, status, Envelope{Success: true, Data: data, Message: message})
}

// WriteError writes the failure envelope with the status of err's kind
func WriteError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	WriteErrorResponse(w, apperr.HTTPStatus(kind), string(kind), apperr.MessageOf(err))
}

// WriteErrorResponse writes {success:false, data:null, message, error}
func WriteErrorResponse(w http.ResponseWriter, status int, errCode, message string) {
	WriteJSONResponse(w, status, Envelope{Success: false, Data: nil, Message: message, Error: errCode})
}
