package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gigbook/gigbook/internal/dto"
	"github.com/gigbook/gigbook/internal/repository"
	"github.com/gigbook/gigbook/internal/service"
	"github.com/gigbook/gigbook/internal/validation"
	"github.com/labstack/echo/v4"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/venues")
	g.GET("", h.ListVenues)
	g.POST("/search", h.SearchVenues)
	g.GET("/create", h.CreateVenueForm)
	g.POST("/create", h.CreateVenue)
	g.GET("/:id", h.GetVenue)
	g.GET("/:id/edit", h.EditVenueForm)
	g.POST("/:id/edit", h.UpdateVenue)
	g.POST("/:id/delete", h.DeleteVenue)
}

// ListVenues returns every venue grouped by (city, state).
func (h *VenueHandler) ListVenues(c echo.Context) error {
	areas, err := h.svc.GroupByLocation(c.Request().Context())
	if err != nil {
		log.Printf("group venues: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving venues")
	}
	if areas == nil {
		areas = []service.VenueArea{}
	}
	return c.JSON(http.StatusOK, areas)
}

func (h *VenueHandler) SearchVenues(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rows, err := h.svc.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		log.Printf("search venues %q: %v", req.SearchTerm, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error searching venues")
	}
	if rows == nil {
		rows = []repository.VenueSummary{}
	}

	return c.JSON(http.StatusOK, dto.VenueSearchResponse{Count: len(rows), Data: rows})
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	detail, err := h.svc.GetDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		log.Printf("get venue %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving venue")
	}

	return c.JSON(http.StatusOK, dto.ToVenueDetailResponse(&detail.Venue, detail.PastShows, detail.UpcomingShows))
}

func (h *VenueHandler) CreateVenueForm(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewFormOptionsResponse())
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(&form); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name),
				Errors:  verr.Fields,
			})
		}
		return err
	}

	venue := form.ToModel()
	if err := h.svc.Create(c.Request().Context(), venue); err != nil {
		log.Printf("create venue: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		"venue":   dto.ToVenueFormValues(venue),
	})
}

func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	detail, err := h.svc.GetDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		log.Printf("get venue %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving venue")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"form":  dto.NewFormOptionsResponse(),
		"venue": dto.ToVenueFormValues(&detail.Venue),
	})
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(&form); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: fmt.Sprintf("An error occurred. Venue %s could not be edited.", form.Name),
				Errors:  verr.Fields,
			})
		}
		return err
	}

	venue, err := h.svc.Update(c.Request().Context(), uint(id), form.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		log.Printf("update venue %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Venue %s could not be edited.", form.Name))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Venue %s was successfully edited!", venue.Name),
		"venue":   dto.ToVenueFormValues(venue),
	})
}

func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid venue id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		log.Printf("delete venue %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Venue with ID %d could not be deleted.", id))
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Venue with ID %d was successfully deleted!", id),
	})
}
