package http

import (
	"github.com/dhruvp2403/samajportal/internal/usecase"
	"github.com/dhruvp2403/samajportal/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type DashboardController struct {
	DashboardUsecase *usecase.DashboardUsecase
	Log              *zap.Logger
	Config           *koanf.Koanf
}

func NewDashboardController(dashboardUsecase *usecase.DashboardUsecase, zap *zap.Logger, koanf *koanf.Koanf) *DashboardController {
	return &DashboardController{
		DashboardUsecase: dashboardUsecase,
		Log:              zap,
		Config:           koanf,
	}
}

func (controller DashboardController) Summary(ctx *fiber.Ctx) error {
	return util.SendSuccessResponseWithData(ctx, controller.DashboardUsecase.Summary(ctx))
}
