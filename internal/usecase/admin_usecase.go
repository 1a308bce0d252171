package usecase

import (
	"strings"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/repository"
	"github.com/dhruvp2403/samajportal/internal/util"
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AdminUsecase struct {
	AdminRepository *repository.AdminRepository
	DB              *pgxpool.Pool
	Log             *zap.Logger
	Config          *koanf.Koanf
}

func NewAdminUsecase(adminRepository *repository.AdminRepository, db *pgxpool.Pool, zap *zap.Logger, koanf *koanf.Koanf) *AdminUsecase {
	return &AdminUsecase{
		AdminRepository: adminRepository,
		DB:              db,
		Log:             zap,
		Config:          koanf,
	}
}

func (usecase *AdminUsecase) Login(ctx *fiber.Ctx, payload model.AdminLoginRequest) (model.TokenResponse, error) {
	ctxContext := ctx.Context()
	token := model.TokenResponse{}

	if payload.Username == "" {
		return token, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Username is required to not be empty",
			Param:   "username",
		}
	}

	if payload.Password == "" {
		return token, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Password is required to not be empty",
			Param:   "password",
		}
	}

	payload.Username = strings.ToLower(payload.Username)

	adminId, passwordHash, err := usecase.AdminRepository.GetAdminAuth(ctxContext, payload.Username)
	if err != nil {
		return token, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(payload.Password))
	if err != nil {
		return token, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Password is incorrect",
			Param:   "password",
		}
	}

	accessToken, err := util.GenerateAccessToken(adminId, usecase.Config.String("JWT_SECRET_KEY"))
	if err != nil {
		return token, err
	}

	err = usecase.AdminRepository.SetAuthTokenInCache(ctxContext, accessToken, adminId)
	if err != nil {
		return token, err
	}

	token = model.TokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: int(util.AccessTokenDuration.Seconds()),
		TokenType:            "Bearer",
	}

	return token, nil
}

func (usecase *AdminUsecase) GetAccessToken(ctx *fiber.Ctx, adminId uuid.UUID, accessToken string) error {
	hashedTokenFromCache, err := usecase.AdminRepository.GetAccessTokenInCache(ctx.Context(), adminId)
	if err != nil {
		return err
	}

	// Hash the token from client before comparing with cached hash
	hashedTokenFromClient := util.HashToken(accessToken)

	if hashedTokenFromClient != hashedTokenFromCache {
		return &model.ValidationError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "Authorization token is expired",
			Param:   "accessToken",
		}
	}

	return nil
}

func (usecase *AdminUsecase) Logout(ctx *fiber.Ctx, adminId uuid.UUID) error {
	err := usecase.AdminRepository.DeleteAuthTokenInCache(ctx.Context(), adminId)
	if err != nil {
		return err
	}

	return nil
}
