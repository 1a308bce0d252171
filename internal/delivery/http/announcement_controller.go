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

type AnnouncementController struct {
	AnnouncementUsecase *usecase.AnnouncementUsecase
	Log                 *zap.Logger
	Config              *koanf.Koanf
}

func NewAnnouncementController(announcementUsecase *usecase.AnnouncementUsecase, zap *zap.Logger, koanf *koanf.Koanf) *AnnouncementController {
	return &AnnouncementController{
		AnnouncementUsecase: announcementUsecase,
		Log:                 zap,
		Config:              koanf,
	}
}

func (controller AnnouncementController) Create(ctx *fiber.Ctx) error {
	adminId := ctx.Locals("adminId").(uuid.UUID)

	var payload model.AnnouncementCreateRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError

	response, err := controller.AnnouncementUsecase.Create(ctx, payload, adminId)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller AnnouncementController) List(ctx *fiber.Ctx) error {
	typeFilter := ctx.Query("type")
	limit := ctx.QueryInt("limit", 50)

	var validationErr *model.ValidationError

	response, err := controller.AnnouncementUsecase.List(ctx, typeFilter, limit)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}
