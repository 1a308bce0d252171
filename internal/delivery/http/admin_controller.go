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

type AdminController struct {
	AdminUsecase *usecase.AdminUsecase
	Log          *zap.Logger
	Config       *koanf.Koanf
}

func NewAdminController(adminUsecase *usecase.AdminUsecase, zap *zap.Logger, koanf *koanf.Koanf) *AdminController {
	return &AdminController{
		AdminUsecase: adminUsecase,
		Log:          zap,
		Config:       koanf,
	}
}

func (controller AdminController) Login(ctx *fiber.Ctx) error {
	var payload model.AdminLoginRequest
	err := util.ReadRequestBody(ctx, &payload)
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		})
	}

	var validationErr *model.ValidationError

	response, err := controller.AdminUsecase.Login(ctx, payload)
	if err != nil {
		if errors.As(err, &validationErr) {
			return util.SendErrorResponse(ctx, err)
		}

		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseWithData(ctx, response)
}

func (controller AdminController) Logout(ctx *fiber.Ctx) error {
	adminId := ctx.Locals("adminId").(uuid.UUID)

	err := controller.AdminUsecase.Logout(ctx, adminId)
	if err != nil {
		return util.SendErrorResponseInternalServer(ctx, controller.Log, err)
	}

	return util.SendSuccessResponseNoData(ctx)
}
