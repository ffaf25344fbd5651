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

type ArtistHandler struct {
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService) *ArtistHandler {
	return &ArtistHandler{svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/artists")
	g.GET("", h.ListArtists)
	g.POST("/search", h.SearchArtists)
	g.GET("/create", h.CreateArtistForm)
	g.POST("/create", h.CreateArtist)
	g.GET("/:id", h.GetArtist)
	g.GET("/:id/edit", h.EditArtistForm)
	g.POST("/:id/edit", h.UpdateArtist)
	g.POST("/:id/delete", h.DeleteArtist)
}

func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		log.Printf("list artists: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving artists")
	}
	return c.JSON(http.StatusOK, dto.ToArtistRefs(artists))
}

func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rows, err := h.svc.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		log.Printf("search artists %q: %v", req.SearchTerm, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error searching artists")
	}
	if rows == nil {
		rows = []repository.ArtistSummary{}
	}

	return c.JSON(http.StatusOK, dto.ArtistSearchResponse{Count: len(rows), Data: rows})
}

func (h *ArtistHandler) GetArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	detail, err := h.svc.GetDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		log.Printf("get artist %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving artist")
	}

	return c.JSON(http.StatusOK, dto.ToArtistDetailResponse(&detail.Artist, detail.PastShows, detail.UpcomingShows))
}

func (h *ArtistHandler) CreateArtistForm(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewFormOptionsResponse())
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(&form); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name),
				Errors:  verr.Fields,
			})
		}
		return err
	}

	artist := form.ToModel()
	if err := h.svc.Create(c.Request().Context(), artist); err != nil {
		log.Printf("create artist: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		"artist":  dto.ToArtistFormValues(artist),
	})
}

func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	detail, err := h.svc.GetDetail(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		log.Printf("get artist %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving artist")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"form":   dto.NewFormOptionsResponse(),
		"artist": dto.ToArtistFormValues(&detail.Artist),
	})
}

func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(&form); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
				Message: fmt.Sprintf("An error occurred. Artist %s could not be edited.", form.Name),
				Errors:  verr.Fields,
			})
		}
		return err
	}

	artist, err := h.svc.Update(c.Request().Context(), uint(id), form.ToModel())
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		log.Printf("update artist %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Artist %s could not be edited.", form.Name))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Artist %s was successfully edited!", artist.Name),
		"artist":  dto.ToArtistFormValues(artist),
	})
}

func (h *ArtistHandler) DeleteArtist(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid artist id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "artist not found")
		}
		log.Printf("delete artist %d: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Artist with ID %d could not be deleted.", id))
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Artist with ID %d was successfully deleted!", id),
	})
}
