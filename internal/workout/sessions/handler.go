package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/nbilic/liftlog/internal/telemetry/tracing"
	"github.com/nbilic/liftlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionsService interface {
	Start(ctx context.Context, week, day int, notes string) (*Session, error)
	Finish(ctx context.Context, id int, notes string) (*Session, error)
	Get(ctx context.Context, id int) (*Session, []SetLog, error)
	Active(ctx context.Context) (*Session, []SetLog, error)
	List(ctx context.Context, params ListParams) ([]Session, int, error)
	AddSet(ctx context.Context, set SetLog) (*SetLog, error)
	UpdateSet(ctx context.Context, set SetLog) error
	DeleteSet(ctx context.Context, id int) error
	ListSets(ctx context.Context, params SetsListParams) ([]SetLog, int, error)
}

type StartSessionRequest struct {
	Week  int    `json:"week"`
	Day   int    `json:"day"`
	Notes string `json:"notes,omitempty"`
}

type FinishSessionRequest struct {
	Notes string `json:"notes,omitempty"`
}

type SessionDetailsResponse struct {
	Session
	Sets []SetLog `json:"sets"`
}

type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type ListSetsResponse struct {
	Sets  []SetLog `json:"sets"`
	Total int      `json:"total"`
}

type UpdateSetResponse struct {
	UpdatedID int `json:"updatedId"`
}

type DeleteSetResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	service sessionsService
}

func NewHandler(service sessionsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.start")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}

	session, err := handler.service.Start(ctx, req.Week, req.Day, req.Notes)
	switch {
	case errors.Is(err, ErrActiveSessionExists):
		http.Error(w, "error, a session is already in progress", http.StatusConflict)
		return
	case errors.Is(err, ErrOutOfProgramRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("failed to start session [week %d, day %d]: %s", req.Week, req.Day, err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal started session: %s", err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	log.Debugf("session started: %s", sessionJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.finish")
	defer span.End()

	id, err := sessionIDFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// the finish notes are optional, an empty body is fine
	var req FinishSessionRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Tracef("finish session, unmarshal json params: %s", err)
			http.Error(w, "finish session failed", http.StatusBadRequest)
			return
		}
	}

	session, err := handler.service.Finish(ctx, id, req.Notes)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSessionFinished):
		http.Error(w, "error, session already finished", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("failed to finish session %d: %s", id, err)
		http.Error(w, "error, failed to finish session", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(session)
	if err != nil {
		log.Errorf("failed to marshal finished session: %s", err)
		http.Error(w, "error, failed to finish session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.active")
	defer span.End()

	session, sets, err := handler.service.Active(ctx)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "no active session", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to get active session: %s", err)
		http.Error(w, "error, failed to get active session", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SessionDetailsResponse{
		Session: *session,
		Sets:    sets,
	})
	if err != nil {
		log.Errorf("failed to marshal active session: %s", err)
		http.Error(w, "error, failed to get active session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.get")
	defer span.End()

	id, err := sessionIDFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, sets, err := handler.service.Get(ctx, id)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "error, failed to get session", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(SessionDetailsResponse{
		Session: *session,
		Sets:    sets,
	})
	if err != nil {
		log.Errorf("failed to marshal session: %s", err)
		http.Error(w, "error, failed to get session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleAnalysis serves the stored progression analysis of a session.
func (handler *Handler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.analysis")
	defer span.End()

	id, err := sessionIDFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, _, err := handler.service.Get(ctx, id)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "error, failed to get session", http.StatusInternalServerError)
		return
	}

	if len(session.Analysis) == 0 {
		http.Error(w, "analysis not available", http.StatusNotFound)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, session.Analysis, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.list")
	defer span.End()

	page, size, err := pageAndSizeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessions, total, err := handler.service.List(ctx, ListParams{
		Page: page,
		Size: size,
	})
	if err != nil {
		log.Errorf("failed to list sessions: %s", err)
		http.Error(w, "error, failed to list sessions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    total,
	})
	if err != nil {
		log.Errorf("failed to marshal sessions list: %s", err)
		http.Error(w, "error, failed to list sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.sets.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set SetLog
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("add set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	addedSet, err := handler.service.AddSet(ctx, set)
	switch {
	case errors.Is(err, ErrInvalidSet):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSessionFinished):
		http.Error(w, "error, session already finished", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("failed to add set [%s, %s]: %s", set.Exercise, set.SetType, err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	setJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal added set: %s", err)
		http.Error(w, "error, failed to add set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.sets.update")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set SetLog
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}
	if set.ID <= 0 {
		http.Error(w, "error, invalid set id", http.StatusBadRequest)
		return
	}

	err := handler.service.UpdateSet(ctx, set)
	switch {
	case errors.Is(err, ErrInvalidSet):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSetNotFound):
		http.Error(w, "set not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSessionFinished):
		http.Error(w, "error, session already finished", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("failed to update set %d: %s", set.ID, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateSetResponse{
		UpdatedID: set.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal update set response: %s", err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.sets.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	err = handler.service.DeleteSet(ctx, id)
	switch {
	case errors.Is(err, ErrSetNotFound):
		http.Error(w, "set not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSessionFinished):
		http.Error(w, "error, session already finished", http.StatusConflict)
		return
	case err != nil:
		log.Errorf("failed to delete set %d: %s", id, err)
		http.Error(w, "error, failed to delete set", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteSetResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete set response: %s", err)
		http.Error(w, "error, failed to delete set", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleListSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.sets.list")
	defer span.End()

	page, size, err := pageAndSizeFromVars(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sets, total, err := handler.service.ListSets(ctx, SetsListParams{
		Page:     page,
		Size:     size,
		Exercise: r.URL.Query().Get("exercise"),
		SetType:  r.URL.Query().Get("set_type"),
	})
	if err != nil {
		log.Errorf("failed to list sets: %s", err)
		http.Error(w, "error, failed to list sets", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListSetsResponse{
		Sets:  sets,
		Total: total,
	})
	if err != nil {
		log.Errorf("failed to marshal sets list: %s", err)
		http.Error(w, "error, failed to list sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func sessionIDFromVars(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
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
