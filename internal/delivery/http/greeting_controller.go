package http

import (
	"errors"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/usecase"
	"github.com/dhruvp2403/samajportal/internal/util"
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type GreetingController struct {
	GreetingUsecase *usecase.GreetingUsecase
	Log             *zap.Logger
	Config          *koanf.Koanf
}

func NewGreetingController(greetingUsecase *usecase.GreetingUsecase, zap *zap.Logger, koanf *koanf.Koanf) *GreetingController {
	return &GreetingController{
		GreetingUsecase: greetingUsecase,
		Log:             zap,
		Config:          koanf,
	}
}

func (controller GreetingController) Submit(ctx *fiber.Ctx) error {
	memberId, err := uuid.Parse(ctx.Params("memberId"))
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Member id must be a valid uuid",
			Param:   "memberId",
		})
	}

	var payload model.GreetingSubmitRequest
	err = util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError

	response, err := controller.GreetingUsecase.Submit(ctx, memberId, payload)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		if errors.As(err, &notFoundErr) {
			return util.SendErrorResponseNotFound(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller GreetingController) ListApproved(ctx *fiber.Ctx) error {
	memberId, err := uuid.Parse(ctx.Params("memberId"))
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Member id must be a valid uuid",
			Param:   "memberId",
		})
	}

	response, err := controller.GreetingUsecase.ListApproved(ctx, memberId)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller GreetingController) Count(ctx *fiber.Ctx) error {
	memberId, err := uuid.Parse(ctx.Params("memberId"))
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Member id must be a valid uuid",
			Param:   "memberId",
		})
	}

	count, err := controller.GreetingUsecase.Count(ctx, memberId)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, fiber.Map{"count": count})
}
