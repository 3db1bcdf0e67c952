package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/case-record-tracker/internal/filter"
	"github.com/iliyamo/case-record-tracker/internal/middleware"
	"github.com/iliyamo/case-record-tracker/internal/photo"
	"github.com/iliyamo/case-record-tracker/internal/queue"
	"github.com/iliyamo/case-record-tracker/internal/repository"
	queue_publisher "github.com/iliyamo/case-record-tracker/internal/service"
	"github.com/iliyamo/case-record-tracker/internal/watch"
)

// CaseHandler implements the data-entry surface: create, update, list and
// the live stream. It serves both the clerk and admin route groups; role
// gating happens in the router middleware, not here.
type CaseHandler struct {
	Cases *repository.CaseRepo
	Hub   *watch.Hub
}

func NewCaseHandler(cases *repository.CaseRepo, hub *watch.Hub) *CaseHandler {
	if cases == nil || hub == nil {
		panic("nil dependency passed to NewCaseHandler")
	}
	return &CaseHandler{Cases: cases, Hub: hub}
}

// ListCases handles GET /v1/cases. The full collection is returned newest
// first; the optional ?q= parameter applies the shared free-text search.
func (h *CaseHandler) ListCases(c echo.Context) error {
	cases, err := h.Cases.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load cases"})
	}
	if q := c.QueryParam("q"); q != "" {
		cases = filter.Search(cases, q)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": cases, "count": len(cases)})
}

// GetCase handles GET /v1/cases/:id.
func (h *CaseHandler) GetCase(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cs, err := h.Cases.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "case not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load case"})
	}
	return c.JSON(http.StatusOK, cs)
}

// CreateCase handles POST /v1/cases. Validation failures are reported
// before any store call so the client keeps its form state; storage
// failures surface as a generic error for the same reason. Timestamps are
// assigned by the database server at commit.
func (h *CaseHandler) CreateCase(c echo.Context) error {
	var body casePayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	fields, problem := body.validateCreate()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}

	id, err := h.Cases.Create(c.Request().Context(), fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create case"})
	}
	created, err := h.Cases.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load case"})
	}

	h.announce(c, "created", created.ID, created.CaseNo, created.Status)
	return c.JSON(http.StatusCreated, created)
}

// UpdateCase handles PUT/PATCH /v1/cases/:id. Partial semantics: fields
// absent from the payload are left untouched, updated_at is refreshed
// server-side and created_at is never part of the statement. Concurrent
// editors race with last-write-wins; there is no conflict detection.
func (h *CaseHandler) UpdateCase(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body casePayload
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	upd, problem := body.validateUpdate()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": problem})
	}

	if err := h.Cases.Update(c.Request().Context(), id, upd); err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "case not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.Cases.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load case"})
	}

	h.announce(c, "updated", updated.ID, updated.CaseNo, updated.Status)
	return c.JSON(http.StatusOK, updated)
}

// UploadPhoto handles POST /v1/cases/photos (multipart field "photo"). It
// validates and encodes the image and returns the data URI; the client
// stores it into the case's photoBase64 field on the next save.
func (h *CaseHandler) UploadPhoto(c echo.Context) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "photo file required"})
	}
	if fh.Size > photo.MaxBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": photo.ErrTooLarge.Error()})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": photo.ErrRead.Error()})
	}
	defer src.Close()

	encoded, err := photo.EncodeReader(fh.Header.Get("Content-Type"), src)
	if err != nil {
		switch {
		case errors.Is(err, photo.ErrNotImage), errors.Is(err, photo.ErrTooLarge):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": photo.ErrRead.Error()})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"photoBase64": encoded})
}

// StreamCases handles GET /v1/cases/stream as Server-Sent Events. Each
// subscriber receives a full-collection snapshot immediately and another
// after every change; row order across snapshots carries no guarantee.
// The subscription ends when the client disconnects.
func (h *CaseHandler) StreamCases(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	ctx := c.Request().Context()
	signals := h.Hub.Subscribe(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-signals:
			cases, err := h.Cases.List(ctx)
			if err != nil {
				// Transient store failure: skip this snapshot, the next
				// change will retry.
				continue
			}
			payload, err := json.Marshal(echo.Map{"items": cases, "count": len(cases)})
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(res, "event: cases\ndata: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// announce pokes local stream subscribers and publishes the change event
// to the broker. Both are best-effort: the write already persisted and
// must not fail because fan-out did.
func (h *CaseHandler) announce(c echo.Context, action string, caseID uint64, caseNo, status string) {
	h.Hub.Notify()

	ev := queue.CaseChangedEvent{
		CaseID:    caseID,
		CaseNo:    caseNo,
		Action:    action,
		Status:    status,
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if u, ok := middleware.CurrentUser(c); ok {
		ev.ActorID = u.ID
		ev.ActorName = u.FullName
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishCaseChanged(ctx, ev)
	}()
}
