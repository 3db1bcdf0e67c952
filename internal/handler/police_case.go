package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/case-record-tracker/internal/filter"
	"github.com/iliyamo/case-record-tracker/internal/repository"
)

// PoliceHandler exposes the investigator surface: search and detail only.
// No mutating endpoint exists here at all, so the read-only guarantee does
// not depend on middleware alone. Responses are cacheable; the routes are
// wrapped in the Redis response cache with a short TTL.
type PoliceHandler struct {
	Cases *repository.CaseRepo
}

func NewPoliceHandler(cases *repository.CaseRepo) *PoliceHandler {
	if cases == nil {
		panic("nil repository passed to NewPoliceHandler")
	}
	return &PoliceHandler{Cases: cases}
}

// SearchCases handles GET /v1/police/cases. The full collection is fetched
// newest first and the optional ?q= term is applied in memory: the
// OR-match over caseNo/name/crimeType (case-insensitive) and aadharNo
// (case-sensitive substring).
func (h *PoliceHandler) SearchCases(c echo.Context) error {
	cases, err := h.Cases.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load cases"})
	}
	cases = filter.Search(cases, c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{"items": cases, "count": len(cases)})
}

// GetCase handles GET /v1/police/cases/:id.
func (h *PoliceHandler) GetCase(c echo.Context) error {
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
