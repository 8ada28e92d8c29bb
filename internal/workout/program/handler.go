package program

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/pkg"
)

// Handler serves the static program table. The program carries no personal
// data, so the route is public.
type Handler struct {
	program *Program
}

func NewHandler(trainingProgram *Program) *Handler {
	return &Handler{
		program: trainingProgram,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.program.get")
	defer span.End()

	respJson, err := json.Marshal(handler.program)
	if err != nil {
		log.Errorf("failed to marshal program: %s", err)
		http.Error(w, "error, failed to get program", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
