package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/service"
)

type HotelService interface {
	GetAllHotels(ctx context.Context, userID uint) ([]domain.Hotel, error)
	GetHotelByID(ctx context.Context, hotelID, userID uint) (domain.Hotel, error)
}

type HotelHandler struct {
	svc HotelService
}

func NewHotelHandler(svc HotelService) *HotelHandler {
	return &HotelHandler{
		svc: svc,
	}
}

// HandleGetHotels godoc
// @Summary      List hotels with rooms
// @Description  Requires a paid, in-person ticket whose type includes hotel access.
// @Tags         hotels
// @Produce      json
// @Success      200  {array}   domain.Hotel
// @Failure      401  {object}  response.Err
// @Failure      402  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hotels [get]
// @Security BearerAuth
func (h *HotelHandler) HandleGetHotels(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	hotels, err := h.svc.GetAllHotels(ctx.Request.Context(), userID)
	if err != nil {
		renderHotelErr(ctx, userID, err)
		return
	}

	ctx.JSON(http.StatusOK, hotels)
}

// HandleGetHotelByID godoc
// @Summary      Get one hotel with rooms
// @Tags         hotels
// @Produce      json
// @Param        hotelId  path      int  true  "Hotel ID"
// @Success      200  {object}  domain.Hotel
// @Failure      401  {object}  response.Err
// @Failure      402  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hotels/{hotelId} [get]
// @Security BearerAuth
func (h *HotelHandler) HandleGetHotelByID(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	// A non-numeric or non-positive id is "no such hotel", not a bad request.
	hotelID, err := strconv.ParseUint(ctx.Param("hotelId"), 10, 32)
	if err != nil || hotelID == 0 {
		response.RenderErr(ctx, response.ErrNotFound("hotel", "ID", ctx.Param("hotelId")))
		return
	}

	hotel, err := h.svc.GetHotelByID(ctx.Request.Context(), uint(hotelID), userID)
	if err != nil {
		renderHotelErr(ctx, userID, err)
		return
	}

	ctx.JSON(http.StatusOK, hotel)
}

func renderHotelErr(ctx *gin.Context, userID uint, err error) {
	switch {
	case errors.Is(err, service.ErrEnrollmentNotFound):
		response.RenderErr(ctx, response.ErrNotFound("enrollment", "userID", userID))
	case errors.Is(err, service.ErrTicketNotFound):
		response.RenderErr(ctx, response.ErrNotFound("ticket", "userID", userID))
	case errors.Is(err, service.ErrHotelNotFound):
		response.RenderErr(ctx, response.ErrNotFound("hotel", "userID", userID))
	case errors.Is(err, service.ErrPaymentRequired):
		response.RenderErr(ctx, response.ErrPaymentRequired())
	default:
		err = fmt.Errorf("v1.renderHotelErr -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
