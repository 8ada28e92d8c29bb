package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// ContentType holds the content type values used across handlers.
var ContentType = struct {
	JSON string
	Text string
	HTML string
}{
	JSON: "application/json",
	Text: "text/plain",
	HTML: "text/html",
}

// WriteResponse writes the given message to the response writer, with an
// optional status code (200 when not given).
func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode ...int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode...)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message))
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.JSON, []byte(message))
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, message []byte) {
	WriteResponseBytes(w, contentType, message)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode ...int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}

	status := http.StatusOK
	if len(statusCode) > 0 {
		status = statusCode[0]
	}
	w.WriteHeader(status)

	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

// SendJsonResponse marshals the given object and writes it with the given
// status code. Marshal failures degrade to a plain 500.
func SendJsonResponse(w http.ResponseWriter, statusCode int, obj interface{}) {
	respBytes, err := json.Marshal(obj)
	if err != nil {
		log.Errorf("send json response, marshal: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}
