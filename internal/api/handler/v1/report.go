package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gallerist/gallery-api/internal/api/handler/v1/response"
	"github.com/gallerist/gallery-api/internal/domain"
)

type ReportService interface {
	ExhibitionRegistrations(ctx context.Context) ([]domain.ExhibitionRegistrationReport, error)
	ArtAvailability(ctx context.Context) ([]domain.ArtAvailabilityReport, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleExhibitionRegistrations godoc
// @Summary      Registrations and attendee totals per exhibition
// @Tags         reports
// @Produce      json
// @Success      200      {array}    domain.ExhibitionRegistrationReport
// @Failure      500      {object}   response.Err
// @Router       /reports/exhibition-registrations [get]
func (h *ReportHandler) HandleExhibitionRegistrations(ctx *gin.Context) {
	reports, err := h.svc.ExhibitionRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleExhibitionRegistrations -> h.svc.ExhibitionRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// HandleArtAvailability godoc
// @Summary      Active art piece counts per availability
// @Tags         reports
// @Produce      json
// @Success      200      {array}    domain.ArtAvailabilityReport
// @Failure      500      {object}   response.Err
// @Router       /reports/art-availability [get]
func (h *ReportHandler) HandleArtAvailability(ctx *gin.Context) {
	reports, err := h.svc.ArtAvailability(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleArtAvailability -> h.svc.ArtAvailability -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reports)
}
