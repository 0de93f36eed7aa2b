package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/eventpass-api/internal/api/handler/v1/request"
	"github.com/eventpass/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/service"
)

type TicketService interface {
	GetTicketByUserID(ctx context.Context, userID uint) (domain.Ticket, error)
	ReserveTicket(ctx context.Context, userID, ticketTypeID uint) (domain.Ticket, error)
	ListTicketTypes(ctx context.Context) ([]domain.TicketType, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleGetTicket godoc
// @Summary      Get the caller's ticket with its type
// @Tags         tickets
// @Produce      json
// @Success      200  {object}  domain.Ticket
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets [get]
// @Security BearerAuth
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ticket, err := h.svc.GetTicketByUserID(ctx.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnrollmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("enrollment", "userID", userID))
		case errors.Is(err, service.ErrTicketNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket", "userID", userID))
		default:
			err = fmt.Errorf("v1.HandleGetTicket -> h.svc.GetTicketByUserID -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleReserveTicket godoc
// @Summary      Reserve a ticket for the caller's enrollment
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.ReserveTicketRequest  true  "ticket type"
// @Success      201  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets [post]
// @Security BearerAuth
func (h *TicketHandler) HandleReserveTicket(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ReserveTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.ReserveTicket(ctx.Request.Context(), userID, req.TicketTypeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEnrollmentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("enrollment", "userID", userID))
		case errors.Is(err, service.ErrTicketTypeNotFound):
			response.RenderErr(ctx, response.ErrNotFound("ticket type", "ID", req.TicketTypeID))
		default:
			err = fmt.Errorf("v1.HandleReserveTicket -> h.svc.ReserveTicket -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, ticket)
}

// HandleListTicketTypes godoc
// @Summary      List ticket types
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketType
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/types [get]
// @Security BearerAuth
func (h *TicketHandler) HandleListTicketTypes(ctx *gin.Context) {
	ticketTypes, err := h.svc.ListTicketTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTicketTypes -> h.svc.ListTicketTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ticketTypes)
}
