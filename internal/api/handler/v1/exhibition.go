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

type ExhibitionService interface {
	CreateExhibition(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
	GetExhibition(ctx context.Context, id uint) (domain.Exhibition, error)
	ListExhibitions(ctx context.Context) ([]domain.Exhibition, error)
	UpdateExhibition(ctx context.Context, exhibition domain.Exhibition) (domain.Exhibition, error)
	DeleteExhibition(ctx context.Context, id uint) error
	AssignArt(ctx context.Context, exhibitionID, artPieceID uint) error
	RemoveArt(ctx context.Context, exhibitionID, artPieceID uint) error
	ListExhibitionArt(ctx context.Context, exhibitionID uint) ([]domain.ArtPiece, error)
	Register(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)
}

type ExhibitionHandler struct {
	svc ExhibitionService
}

func NewExhibitionHandler(svc ExhibitionService) *ExhibitionHandler {
	return &ExhibitionHandler{
		svc: svc,
	}
}

func parseExhibitionID(ctx *gin.Context) (uint, string, bool) {
	rawExhibitionID := ctx.Param("exhibitionID")
	exhibitionID, err := strconv.ParseUint(rawExhibitionID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return 0, rawExhibitionID, false
	}

	return uint(exhibitionID), rawExhibitionID, true
}

// HandleCreateExhibition godoc
// @Summary      Create an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        request   body      request.ExhibitionRequest true "request body"
// @Success      201      {object}   domain.Exhibition
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions [post]
func (h *ExhibitionHandler) HandleCreateExhibition(ctx *gin.Context) {
	var req request.ExhibitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	exhibition, err := h.svc.CreateExhibition(ctx.Request.Context(), domain.Exhibition{
		Title:    req.Title,
		Date:     req.Date,
		Status:   req.Status,
		Space:    req.Space,
		Category: req.Category,
		Poster:   req.Poster,
		Price:    req.Price,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateExhibition -> h.svc.CreateExhibition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, exhibition)
}

// HandleGetExhibition godoc
// @Summary      Get an exhibition by ID
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Success      200      {object}   domain.Exhibition
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID} [get]
func (h *ExhibitionHandler) HandleGetExhibition(ctx *gin.Context) {
	exhibitionID, rawExhibitionID, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	exhibition, err := h.svc.GetExhibition(ctx.Request.Context(), exhibitionID)
	if err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("exhibition", "ID", rawExhibitionID))

			return
		}

		err = fmt.Errorf("v1.HandleGetExhibition -> h.svc.GetExhibition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, exhibition)
}

// HandleListExhibitions godoc
// @Summary      List all exhibitions
// @Tags         exhibitions
// @Produce      json
// @Success      200      {array}    domain.Exhibition
// @Failure      500      {object}   response.Err
// @Router       /exhibitions [get]
func (h *ExhibitionHandler) HandleListExhibitions(ctx *gin.Context) {
	exhibitions, err := h.svc.ListExhibitions(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListExhibitions -> h.svc.ListExhibitions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, exhibitions)
}

// HandleUpdateExhibition godoc
// @Summary      Update an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Param        request   body      request.ExhibitionRequest true "request body"
// @Success      200      {object}   domain.Exhibition
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID} [put]
func (h *ExhibitionHandler) HandleUpdateExhibition(ctx *gin.Context) {
	exhibitionID, rawExhibitionID, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	var req request.ExhibitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	exhibition, err := h.svc.UpdateExhibition(ctx.Request.Context(), domain.Exhibition{
		ID:       exhibitionID,
		Title:    req.Title,
		Date:     req.Date,
		Status:   req.Status,
		Space:    req.Space,
		Category: req.Category,
		Poster:   req.Poster,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("exhibition", "ID", rawExhibitionID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateExhibition -> h.svc.UpdateExhibition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, exhibition)
}

// HandleDeleteExhibition godoc
// @Summary      Delete an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID} [delete]
func (h *ExhibitionHandler) HandleDeleteExhibition(ctx *gin.Context) {
	exhibitionID, rawExhibitionID, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	if err := h.svc.DeleteExhibition(ctx.Request.Context(), exhibitionID); err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("exhibition", "ID", rawExhibitionID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteExhibition -> h.svc.DeleteExhibition -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAssignArt godoc
// @Summary      Assign an art piece to an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Param        request   body      request.AssignArtRequest true "request body"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID}/art-pieces [post]
func (h *ExhibitionHandler) HandleAssignArt(ctx *gin.Context) {
	exhibitionID, rawExhibitionID, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	var req request.AssignArtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.AssignArt(ctx.Request.Context(), exhibitionID, req.ArtPieceID); err != nil {
		switch {
		case errors.Is(err, service.ErrExhibitionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("exhibition", "ID", rawExhibitionID))
		case errors.Is(err, service.ErrArtPieceNotFound):
			response.RenderErr(ctx, response.ErrNotFound("art piece", "ID", req.ArtPieceID))
		case errors.Is(err, service.ErrArtAlreadyAssigned), errors.Is(err, service.ErrArtPieceDisplayed):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleAssignArt -> h.svc.AssignArt -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRemoveArt godoc
// @Summary      Remove an art piece from an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Param        artPieceID   path   int  true "art piece ID"
// @Success      204
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID}/art-pieces/{artPieceID} [delete]
func (h *ExhibitionHandler) HandleRemoveArt(ctx *gin.Context) {
	exhibitionID, _, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	rawArtPieceID := ctx.Param("artPieceID")
	artPieceID, err := strconv.ParseUint(rawArtPieceID, 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = h.svc.RemoveArt(ctx.Request.Context(), exhibitionID, uint(artPieceID)); err != nil {
		if errors.Is(err, service.ErrArtNotAssigned) {
			response.RenderErr(ctx, response.ErrNotFound("art piece", "ID", rawArtPieceID))

			return
		}

		err = fmt.Errorf("v1.HandleRemoveArt -> h.svc.RemoveArt -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListExhibitionArt godoc
// @Summary      List art pieces shown at an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Success      200      {array}    domain.ArtPiece
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID}/art-pieces [get]
func (h *ExhibitionHandler) HandleListExhibitionArt(ctx *gin.Context) {
	exhibitionID, rawExhibitionID, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	pieces, err := h.svc.ListExhibitionArt(ctx.Request.Context(), exhibitionID)
	if err != nil {
		if errors.Is(err, service.ErrExhibitionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("exhibition", "ID", rawExhibitionID))

			return
		}

		err = fmt.Errorf("v1.HandleListExhibitionArt -> h.svc.ListExhibitionArt -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, pieces)
}

// HandleRegister godoc
// @Summary      Register attendance for an exhibition
// @Tags         exhibitions
// @Produce      json
// @Param        exhibitionID path   int  true "exhibition ID"
// @Param        request   body      request.RegistrationRequest true "request body"
// @Success      201      {object}   domain.Registration
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /exhibitions/{exhibitionID}/registrations [post]
func (h *ExhibitionHandler) HandleRegister(ctx *gin.Context) {
	exhibitionID, rawExhibitionID, ok := parseExhibitionID(ctx)
	if !ok {
		return
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrUnauthorized(err.Error()))

		return
	}

	var req request.RegistrationRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	registration, err := h.svc.Register(ctx.Request.Context(), domain.Registration{
		UserID:       userID,
		ExhibitionID: exhibitionID,
		Type:         req.Type,
		Attendees:    req.Attendees,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAttendees):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAttendees))
		case errors.Is(err, service.ErrExhibitionNotFound):
			response.RenderErr(ctx, response.ErrNotFound("exhibition", "ID", rawExhibitionID))
		default:
			err = fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleListRegistrations godoc
// @Summary      List all exhibition registrations
// @Tags         exhibitions
// @Produce      json
// @Success      200      {array}    domain.Registration
// @Failure      500      {object}   response.Err
// @Router       /registrations [get]
func (h *ExhibitionHandler) HandleListRegistrations(ctx *gin.Context) {
	registrations, err := h.svc.ListRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, registrations)
}
