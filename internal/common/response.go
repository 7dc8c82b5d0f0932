package common

import (
	"encoding/json"
	"net/http"
)

// Metadata mirrors the response envelope's _metadata block. StatusCode is
// the machine-readable code, not the HTTP status: a login on an expired
// password returns HTTP 200 with an error code here.
type Metadata struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

type Envelope struct {
	Metadata Metadata    `json:"_metadata"`
	Data     interface{} `json:"data,omitempty"`
}

func RespondWithError(w http.ResponseWriter, httpStatus, code int, message string) {
	RespondWithJSON(w, httpStatus, Envelope{
		Metadata: Metadata{StatusCode: code, Message: message},
	})
}

func RespondWithJSON(w http.ResponseWriter, httpStatus int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"_metadata":{"statusCode":5000,"message":"Failed to marshal JSON response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	w.Write(response)
}
