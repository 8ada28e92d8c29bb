package events

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/pkg"
)

type service interface {
	AddBodyweightReport(ctx context.Context, br BodyweightReport) (*BodyweightReport, error)
	AddPainReport(ctx context.Context, pr PainReport) (*PainReport, error)
	List(ctx context.Context, params ListParams) ([]*Event, error)
	Count(ctx context.Context, params EventParams) (int, error)
}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
}

type Handler struct {
	service service
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleBodyweightReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.events.bodyweightreport")
	defer span.End()

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var br BodyweightReport
	if err := json.NewDecoder(r.Body).Decode(&br); err != nil {
		log.Errorf("add bodyweight report, unmarshal json params: %s", err)
		http.Error(w, "add bodyweight report failed", http.StatusBadRequest)
		return
	}

	addedBr, err := handler.service.AddBodyweightReport(ctx, br)
	if err != nil {
		log.Errorf("failed to add bodyweight report: %s", err)
		http.Error(w, "error, failed to add bodyweight report", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(addedBr)
	if err != nil {
		log.Errorf("failed to marshal added bodyweight report: %s", err)
		http.Error(w, "error, failed to add bodyweight report", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandlePainReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.events.painreport")
	defer span.End()

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var pr PainReport
	if err := json.NewDecoder(r.Body).Decode(&pr); err != nil {
		log.Errorf("add pain report, unmarshal json params: %s", err)
		http.Error(w, "add pain report failed", http.StatusBadRequest)
		return
	}

	addedPr, err := handler.service.AddPainReport(ctx, pr)
	if err != nil {
		log.Errorf("failed to add pain report: %s", err)
		http.Error(w, "error, failed to add pain report", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(addedPr)
	if err != nil {
		log.Errorf("failed to marshal added pain report: %s", err)
		http.Error(w, "error, failed to add pain report", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.events.list")
	defer span.End()

	page, size, err := pageAndSizeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var eventParams EventParams
	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		eventType := EventType(typeParam)
		if !eventType.IsValid() {
			http.Error(w, "invalid event type", http.StatusBadRequest)
			return
		}
		eventParams.Type = &eventType
	}

	events, err := handler.service.List(ctx, ListParams{
		EventParams: eventParams,
		Page:        page,
		Size:        size,
	})
	if err != nil {
		log.Errorf("failed to list events: %s", err)
		http.Error(w, "error, failed to list events", http.StatusInternalServerError)
		return
	}

	total, err := handler.service.Count(ctx, eventParams)
	if err != nil {
		log.Errorf("failed to count events: %s", err)
		http.Error(w, "error, failed to list events", http.StatusInternalServerError)
		return
	}

	if events == nil {
		events = []*Event{}
	}

	respJson, err := json.Marshal(ListEventsResponse{
		Events: events,
		Total:  total,
	})
	if err != nil {
		log.Errorf("failed to marshal events list: %s", err)
		http.Error(w, "error, failed to list events", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
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
