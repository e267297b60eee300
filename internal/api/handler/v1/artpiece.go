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

type ArtPieceService interface {
	CreateArtPiece(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error)
	GetArtPiece(ctx context.Context, id uint) (domain.ArtPiece, error)
	ListArtPieces(ctx context.Context) ([]domain.ArtPiece, error)
	ListAvailableArtPieces(ctx context.Context) ([]domain.ArtPiece, error)
	UpdateArtPiece(ctx context.Context, piece domain.ArtPiece) (domain.ArtPiece, error)
	DeleteArtPiece(ctx context.Context, id uint) error
}

type ArtPieceHandler struct {
	svc ArtPieceService
}

func NewArtPieceHandler(svc ArtPieceService) *ArtPieceHandler {
	return &ArtPieceHandler{
		svc: svc,
	}
}

// HandleCreateArtPiece godoc
// @Summary      Create an art piece
// @Tags         art-pieces
// @Produce      json
// @Param        request   body      request.ArtPieceRequest true "request body"
// @Success      201      {object}   domain.ArtPiece
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /art-pieces [post]
func (h *ArtPieceHandler) HandleCreateArtPiece(ctx *gin.Context) {
	var req request.ArtPieceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	piece, err := h.svc.CreateArtPiece(ctx.Request.Context(), domain.ArtPiece{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		EstimatedValue: req.EstimatedValue,
		Availability:   domain.AvailabilityAvailable,
		IsActive:       req.Active(),
		Image:          req.Image,
		Quantity:       req.Quantity,
		ArtistID:       req.ArtistID,
	})
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrArtistNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateArtPiece -> h.svc.CreateArtPiece -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, piece)
}

// HandleGetArtPiece godoc
// @Summary      Get an art piece by ID
// @Tags         art-pieces
// @Produce      json
// @Param        artPieceID path     int  true "art piece ID"
// @Success      200      {object}   domain.ArtPiece
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /art-pieces/{artPieceID} [get]
func (h *ArtPieceHandler) HandleGetArtPiece(ctx *gin.Context) {
	rawArtPieceID := ctx.Param("artPieceID")
	artPieceID, err := strconv.ParseUint(rawArtPieceID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	piece, err := h.svc.GetArtPiece(ctx.Request.Context(), uint(artPieceID))
	if err != nil {
		if errors.Is(err, service.ErrArtPieceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("art piece", "ID", rawArtPieceID))

			return
		}

		err = fmt.Errorf("v1.HandleGetArtPiece -> h.svc.GetArtPiece -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, piece)
}

// HandleListArtPieces godoc
// @Summary      List all art pieces
// @Tags         art-pieces
// @Produce      json
// @Success      200      {array}    domain.ArtPiece
// @Failure      500      {object}   response.Err
// @Router       /art-pieces [get]
func (h *ArtPieceHandler) HandleListArtPieces(ctx *gin.Context) {
	pieces, err := h.svc.ListArtPieces(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListArtPieces -> h.svc.ListArtPieces -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pieces)
}

// HandleListAvailableArtPieces godoc
// @Summary      List purchasable art pieces
// @Tags         art-pieces
// @Produce      json
// @Success      200      {array}    domain.ArtPiece
// @Failure      500      {object}   response.Err
// @Router       /art-pieces/available [get]
func (h *ArtPieceHandler) HandleListAvailableArtPieces(ctx *gin.Context) {
	pieces, err := h.svc.ListAvailableArtPieces(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAvailableArtPieces -> h.svc.ListAvailableArtPieces -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pieces)
}

// HandleUpdateArtPiece godoc
// @Summary      Update an art piece
// @Tags         art-pieces
// @Produce      json
// @Param        artPieceID path     int  true "art piece ID"
// @Param        request   body      request.ArtPieceRequest true "request body"
// @Success      200      {object}   domain.ArtPiece
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /art-pieces/{artPieceID} [put]
func (h *ArtPieceHandler) HandleUpdateArtPiece(ctx *gin.Context) {
	rawArtPieceID := ctx.Param("artPieceID")
	artPieceID, err := strconv.ParseUint(rawArtPieceID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ArtPieceRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	piece, err := h.svc.UpdateArtPiece(ctx.Request.Context(), domain.ArtPiece{
		ID:             uint(artPieceID),
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		EstimatedValue: req.EstimatedValue,
		IsActive:       req.Active(),
		Image:          req.Image,
		Quantity:       req.Quantity,
		ArtistID:       req.ArtistID,
	})
	if err != nil {
		if errors.Is(err, service.ErrArtPieceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("art piece", "ID", rawArtPieceID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateArtPiece -> h.svc.UpdateArtPiece -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, piece)
}

// HandleDeleteArtPiece godoc
// @Summary      Delete an art piece
// @Tags         art-pieces
// @Produce      json
// @Param        artPieceID path     int  true "art piece ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /art-pieces/{artPieceID} [delete]
func (h *ArtPieceHandler) HandleDeleteArtPiece(ctx *gin.Context) {
	rawArtPieceID := ctx.Param("artPieceID")
	artPieceID, err := strconv.ParseUint(rawArtPieceID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.DeleteArtPiece(ctx.Request.Context(), uint(artPieceID)); err != nil {
		if errors.Is(err, service.ErrArtPieceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("art piece", "ID", rawArtPieceID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteArtPiece -> h.svc.DeleteArtPiece -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
