package middleware

import (
	"errors"

	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/usecase"
	"github.com/dhruvp2403/samajportal/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	App          *fiber.App
	Log          *zap.Logger
	Config       *koanf.Koanf
	AdminUsecase *usecase.AdminUsecase
}

func NewAuthMiddleware(app *fiber.App, zap *zap.Logger, koanf *koanf.Koanf, adminUsecase *usecase.AdminUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		App:          app,
		Log:          zap,
		Config:       koanf,
		AdminUsecase: adminUsecase,
	}
}

func (middleware *AuthMiddleware) ProtectedRoute() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var validationErr *model.ValidationError

		accessToken := ctx.Get("Authorization")
		tokenString, adminId, err := util.ValidateAccessToken(accessToken, middleware.Log, middleware.Config.String("JWT_SECRET_KEY"))
		if err != nil {
			if errors.As(err, &validationErr) {
				return util.SendErrorResponseNotFound(ctx, err)
			}

			return util.SendErrorResponseInternalServer(ctx, middleware.Log, err)
		}

		err = middleware.AdminUsecase.GetAccessToken(ctx, adminId, tokenString)
		if err != nil {
			if errors.As(err, &validationErr) {
				return util.SendErrorResponseNotFound(ctx, err)
			}

			return util.SendErrorResponseInternalServer(ctx, middleware.Log, err)
		}

		ctx.Locals("adminId", adminId)

		middleware.Log.Debug("middleware here", zap.String("adminId", adminId.String()))

		return ctx.Next()
	}
}
