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

type MemberController struct {
	MemberUsecase *usecase.MemberUsecase
	Log           *zap.Logger
	Config        *koanf.Koanf
}

func NewMemberController(memberUsecase *usecase.MemberUsecase, zap *zap.Logger, koanf *koanf.Koanf) *MemberController {
	return &MemberController{
		MemberUsecase: memberUsecase,
		Log:           zap,
		Config:        koanf,
	}
}

func (controller MemberController) Register(ctx *fiber.Ctx) error {
	var payload model.MemberRegisterRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError
	var uploadErr *model.UploadError

	response, err := controller.MemberUsecase.Register(ctx, payload)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		if errors.As(err, &uploadErr) {
			return util.SendErrorResponseBadGateway(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller MemberController) SetStatus(ctx *fiber.Ctx) error {
	memberId, err := uuid.Parse(ctx.Params("memberId"))
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Member id must be a valid uuid",
			Param:   "memberId",
		})
	}

	adminId := ctx.Locals("adminId").(uuid.UUID)

	var payload model.MemberStatusUpdateRequest
	err = util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError

	response, err := controller.MemberUsecase.SetStatus(ctx, memberId, payload.Status, adminId)
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

func (controller MemberController) Delete(ctx *fiber.Ctx) error {
	memberId, err := uuid.Parse(ctx.Params("memberId"))
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Member id must be a valid uuid",
			Param:   "memberId",
		})
	}

	var notFoundErr *model.NotFoundError

	err = controller.MemberUsecase.Delete(ctx, memberId)
	if err != nil {
		if errors.As(err, &notFoundErr) {
			return util.SendErrorResponseNotFound(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseNoData(ctx)
}

func (controller MemberController) List(ctx *fiber.Ctx) error {
	response, err := controller.MemberUsecase.List(ctx)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller MemberController) Stats(ctx *fiber.Ctx) error {
	response, err := controller.MemberUsecase.Stats(ctx)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller MemberController) TodaysBirthdays(ctx *fiber.Ctx) error {
	response, err := controller.MemberUsecase.TodaysBirthdays(ctx)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller MemberController) UpcomingBirthdays(ctx *fiber.Ctx) error {
	windowDays := ctx.QueryInt("days", 7)

	var validationErr *model.ValidationError

	response, err := controller.MemberUsecase.UpcomingBirthdays(ctx, windowDays)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}
