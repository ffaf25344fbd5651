package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gigbook/gigbook/internal/dto"
	"github.com/gigbook/gigbook/internal/service"
	"github.com/gigbook/gigbook/internal/validation"
	"github.com/labstack/echo/v4"
)

type ShowHandler struct {
	svc       service.ShowService
	artistSvc service.ArtistService
	venueSvc  service.VenueService
}

func NewShowHandler(svc service.ShowService, artistSvc service.ArtistService, venueSvc service.VenueService) *ShowHandler {
	return &ShowHandler{svc: svc, artistSvc: artistSvc, venueSvc: venueSvc}
}

func (h *ShowHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/shows")
	g.GET("", h.ListShows)
	g.GET("/create", h.CreateShowForm)
	g.POST("/create", h.CreateShow)
}

func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.svc.List(c.Request().Context())
	if err != nil {
		log.Printf("list shows: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving shows")
	}

	resp := make([]dto.ShowResponse, len(shows))
	for i, s := range shows {
		resp[i] = dto.ToShowResponse(&s)
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateShowForm lists the artists and venues a show can be booked between.
func (h *ShowHandler) CreateShowForm(c echo.Context) error {
	ctx := c.Request().Context()

	artists, err := h.artistSvc.ListAll(ctx)
	if err != nil {
		log.Printf("list artists: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving form options")
	}

	venues, err := h.venueSvc.ListAll(ctx)
	if err != nil {
		log.Printf("list venues: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving form options")
	}

	return c.JSON(http.StatusOK, dto.ShowFormOptionsResponse{
		Artists: dto.ToArtistRefs(artists),
		Venues:  dto.ToVenueRefs(venues),
	})
}

func (h *ShowHandler) CreateShow(c echo.Context) error {
	var form dto.ShowForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(&form); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: "An error occurred. Show could not be listed.",
				Errors:  verr.Fields,
			})
		}
		return err
	}

	show := form.ToModel()
	if err := h.svc.Create(c.Request().Context(), show); err != nil {
		switch {
		case errors.Is(err, service.ErrShowArtistNotFound), errors.Is(err, service.ErrShowVenueNotFound):
			return echo.NewHTTPError(http.StatusBadRequest,
				"An error occurred. The provided IDs don't exist, show could not be listed.")
		default:
			log.Printf("create show: %v", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "An error occurred. Show could not be listed.")
		}
	}

	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Show was successfully listed!"})
}
