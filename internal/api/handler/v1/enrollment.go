package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/eventpass-api/internal/api/handler/v1/request"
	"github.com/eventpass/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass/eventpass-api/internal/domain"
	"github.com/eventpass/eventpass-api/internal/service"
)

type EnrollmentService interface {
	GetEnrollmentByUserID(ctx context.Context, userID uint) (domain.Enrollment, error)
	UpsertEnrollment(ctx context.Context, enrollment domain.Enrollment) (domain.Enrollment, error)
}

type EnrollmentHandler struct {
	svc EnrollmentService
}

func NewEnrollmentHandler(svc EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		svc: svc,
	}
}

// HandleGetEnrollment godoc
// @Summary      Get the caller's enrollment
// @Tags         enrollments
// @Produce      json
// @Success      200  {object}  domain.Enrollment
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /enrollments [get]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleGetEnrollment(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	enrollment, err := h.svc.GetEnrollmentByUserID(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("enrollment", "userID", userID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEnrollment -> h.svc.GetEnrollmentByUserID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, enrollment)
}

// HandleUpsertEnrollment godoc
// @Summary      Create or replace the caller's enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpsertEnrollmentRequest  true  "enrollment"
// @Success      200  {object}  domain.Enrollment
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /enrollments [post]
// @Security BearerAuth
func (h *EnrollmentHandler) HandleUpsertEnrollment(ctx *gin.Context) {
	userID, respErr := userIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpsertEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	birthday, err := time.Parse(time.RFC3339, req.Birthday)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid birthday: %w", err)))
		return
	}

	enrollment := domain.Enrollment{
		UserID:   userID,
		Name:     req.Name,
		CPF:      req.CPF,
		Birthday: birthday,
		Phone:    req.Phone,
		Address: &domain.Address{
			CEP:           req.Address.CEP,
			Street:        req.Address.Street,
			City:          req.Address.City,
			State:         req.Address.State,
			Number:        req.Address.Number,
			Neighborhood:  req.Address.Neighborhood,
			AddressDetail: req.Address.AddressDetail,
		},
	}

	saved, err := h.svc.UpsertEnrollment(ctx.Request.Context(), enrollment)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpsertEnrollment -> h.svc.UpsertEnrollment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, saved)
}
