package plan

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plan_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/internal/workout/progression"
	"github.com/nbilic/liftlog/pkg"
)

type planService interface {
	ForDay(ctx context.Context, week, day int) (*DayPlan, error)
}

type Handler struct {
	service planService
}

func NewHandler(service planService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleForDay serves the assembled plan for one program week and day.
func (handler *Handler) HandleForDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.plan.forday")
	defer span.End()

	week, day, err := weekAndDayFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	dayPlan, err := handler.service.ForDay(ctx, week, day)
	switch {
	case errors.Is(err, progression.ErrBadTarget):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to get plan for week %d day %d: %s", week, day, err)
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(dayPlan)
	if err != nil {
		log.Errorf("failed to marshal plan: %s", err)
		http.Error(w, "error, failed to get plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func weekAndDayFromVars(r *http.Request) (week, day int, err error) {
	vars := mux.Vars(r)
	week, err = strconv.Atoi(vars["week"])
	if err != nil {
		return 0, 0, errors.New("parse form error, parameter <week>")
	}
	day, err = strconv.Atoi(vars["day"])
	if err != nil {
		return 0, 0, errors.New("parse form error, parameter <day>")
	}
	return week, day, nil
}
