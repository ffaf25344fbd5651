package handler

import (
	"log"
	"net/http"

	"github.com/gigbook/gigbook/internal/dto"
	"github.com/gigbook/gigbook/internal/service"
	"github.com/labstack/echo/v4"
)

// recentLimit caps how many of the newest listings the home page shows.
const recentLimit = 10

type HomeHandler struct {
	venueSvc  service.VenueService
	artistSvc service.ArtistService
}

func NewHomeHandler(venueSvc service.VenueService, artistSvc service.ArtistService) *HomeHandler {
	return &HomeHandler{venueSvc: venueSvc, artistSvc: artistSvc}
}

func (h *HomeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
}

func (h *HomeHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	venues, err := h.venueSvc.ListRecent(ctx, recentLimit)
	if err != nil {
		log.Printf("list recent venues: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving recent listings")
	}

	artists, err := h.artistSvc.ListRecent(ctx, recentLimit)
	if err != nil {
		log.Printf("list recent artists: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving recent listings")
	}

	return c.JSON(http.StatusOK, dto.HomeResponse{
		Venues:  dto.ToVenueRefs(venues),
		Artists: dto.ToArtistRefs(artists),
	})
}
