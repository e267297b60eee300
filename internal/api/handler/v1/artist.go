package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gallerist/gallery-api/internal/api/handler/v1/request"
	"github.com/gallerist/gallery-api/internal/api/handler/v1/response"
	"github.com/gallerist/gallery-api/internal/domain"
	"github.com/gallerist/gallery-api/internal/service"
)

type ArtistService interface {
	CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	GetArtist(ctx context.Context, id uint) (domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error
}

type ArtistHandler struct {
	svc ArtistService
}

func NewArtistHandler(svc ArtistService) *ArtistHandler {
	return &ArtistHandler{
		svc: svc,
	}
}

// HandleCreateArtist godoc
// @Summary      Create an artist
// @Tags         artists
// @Produce      json
// @Param        request   body      request.ArtistRequest true "request body"
// @Success      201      {object}   domain.Artist
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists [post]
func (h *ArtistHandler) HandleCreateArtist(ctx *gin.Context) {
	var req request.ArtistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	artist, err := h.svc.CreateArtist(ctx.Request.Context(), domain.Artist{
		IDNumber:  req.IDNumber,
		FirstName: req.FirstName,
		Surname:   req.Surname,
		IsActive:  req.Active(),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateArtist -> h.svc.CreateArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, artist)
}

// HandleGetArtist godoc
// @Summary      Get an artist by ID
// @Tags         artists
// @Produce      json
// @Param        artistID  path      int  true "artist ID"
// @Success      200      {object}   domain.Artist
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID} [get]
func (h *ArtistHandler) HandleGetArtist(ctx *gin.Context) {
	rawArtistID := ctx.Param("artistID")
	artistID, err := strconv.ParseUint(rawArtistID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	artist, err := h.svc.GetArtist(ctx.Request.Context(), uint(artistID))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", rawArtistID))

			return
		}

		err = fmt.Errorf("v1.HandleGetArtist -> h.svc.GetArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, artist)
}

// HandleListArtists godoc
// @Summary      List all artists
// @Tags         artists
// @Produce      json
// @Success      200      {array}    domain.Artist
// @Failure      500      {object}   response.Err
// @Router       /artists [get]
func (h *ArtistHandler) HandleListArtists(ctx *gin.Context) {
	artists, err := h.svc.ListArtists(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListArtists -> h.svc.ListArtists -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, artists)
}

// HandleUpdateArtist godoc
// @Summary      Update an artist
// @Tags         artists
// @Produce      json
// @Param        artistID  path      int  true "artist ID"
// @Param        request   body      request.ArtistRequest true "request body"
// @Success      200      {object}   domain.Artist
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID} [put]
func (h *ArtistHandler) HandleUpdateArtist(ctx *gin.Context) {
	rawArtistID := ctx.Param("artistID")
	artistID, err := strconv.ParseUint(rawArtistID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ArtistRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	artist, err := h.svc.UpdateArtist(ctx.Request.Context(), domain.Artist{
		ID:        uint(artistID),
		IDNumber:  req.IDNumber,
		FirstName: req.FirstName,
		Surname:   req.Surname,
		IsActive:  req.Active(),
	})
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", rawArtistID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateArtist -> h.svc.UpdateArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, artist)
}

// HandleDeleteArtist godoc
// @Summary      Delete an artist
// @Tags         artists
// @Produce      json
// @Param        artistID  path      int  true "artist ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID} [delete]
func (h *ArtistHandler) HandleDeleteArtist(ctx *gin.Context) {
	rawArtistID := ctx.Param("artistID")
	artistID, err := strconv.ParseUint(rawArtistID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteArtist(ctx.Request.Context(), uint(artistID)); err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "ID", rawArtistID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteArtist -> h.svc.DeleteArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
