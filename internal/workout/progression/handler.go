package progression

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/pkg"
)

type progressionService interface {
	ForTarget(ctx context.Context, week, day int) ([]Progression, error)
	List(ctx context.Context, params ListParams) ([]Progression, int, error)
}

type ListProgressionsResponse struct {
	Progressions []Progression `json:"progressions"`
	Total        int           `json:"total"`
}

type TargetProgressionsResponse struct {
	Week         int           `json:"week"`
	Day          int           `json:"day"`
	Progressions []Progression `json:"progressions"`
}

type Handler struct {
	service progressionService
}

func NewHandler(service progressionService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleForTarget serves the progression rows aimed at one program week
// and day.
func (handler *Handler) HandleForTarget(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.progression.fortarget")
	defer span.End()

	week, day, err := weekAndDayFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progressions, err := handler.service.ForTarget(ctx, week, day)
	switch {
	case errors.Is(err, ErrBadTarget):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to get progressions for week %d day %d: %s", week, day, err)
		http.Error(w, "error, failed to get progressions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(TargetProgressionsResponse{
		Week:         week,
		Day:          day,
		Progressions: progressions,
	})
	if err != nil {
		log.Errorf("failed to marshal progressions: %s", err)
		http.Error(w, "error, failed to get progressions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.progression.list")
	defer span.End()

	page, size, err := pageAndSizeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	progressions, total, err := handler.service.List(ctx, ListParams{
		Page:     page,
		Size:     size,
		Exercise: r.URL.Query().Get("exercise"),
	})
	if err != nil {
		log.Errorf("failed to list progressions: %s", err)
		http.Error(w, "error, failed to list progressions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListProgressionsResponse{
		Progressions: progressions,
		Total:        total,
	})
	if err != nil {
		log.Errorf("failed to marshal progressions list: %s", err)
		http.Error(w, "error, failed to list progressions", http.StatusInternalServerError)
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

func pageAndSizeFromVars(r *http.Request) (page, size int, err error) {
	vars := mux.Vars(r)
	page, err = strconv.Atoi(vars["page"])
	if err != nil {
		return 0, 0, errors.New("parse form error, parameter <page>")
	}
	size, err = strconv.Atoi(vars["size"])
	if err != nil {
		return 0, 0, errors.New("parse form error, parameter <size>")
	}
	if page < 1 {
		return 0, 0, errors.New("invalid page (has to be non-zero value)")
	}
	if size < 1 {
		return 0, 0, errors.New("invalid size (has to be non-zero value)")
	}
	return page, size, nil
}
