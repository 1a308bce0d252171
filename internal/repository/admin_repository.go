package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/util"
	"github.com/google/uuid"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type AdminRepository struct {
	Log     *zap.Logger
	DB      *pgxpool.Pool
	DBCache *redis.Client
}

func NewAdminRepository(zap *zap.Logger, db *pgxpool.Pool, dbCache *redis.Client) *AdminRepository {
	return &AdminRepository{
		Log:     zap,
		DB:      db,
		DBCache: dbCache,
	}
}

// Postgresql
func (repository *AdminRepository) GetAdminAuth(ctx context.Context, username string) (uuid.UUID, string, error) {
	query := "SELECT id, password FROM admins WHERE username=$1 LIMIT 1"

	var id uuid.UUID
	var passwordHash string

	err := repository.DB.QueryRow(ctx, query, username).Scan(&id, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return id, passwordHash, &model.ValidationError{
				Code:    constant.ERR_VALIDATION_CODE,
				Message: "Username is not found",
				Param:   "username",
			}
		}
		return id, passwordHash, err
	}

	return id, passwordHash, nil
}

// Redis - Cache
func (repository *AdminRepository) SetAuthTokenInCache(ctx context.Context, accessToken string, adminId uuid.UUID) error {
	accessTokenKey := fmt.Sprintf("auth:accessToken:%s", adminId)

	// Hash tokens before storing in Redis for security
	hashedAccessToken := util.HashToken(accessToken)

	err := repository.DBCache.Set(ctx, accessTokenKey, hashedAccessToken, util.AccessTokenDuration).Err()
	if err != nil {
		return err
	}

	return nil
}

func (repository *AdminRepository) GetAccessTokenInCache(ctx context.Context, adminId uuid.UUID) (string, error) {
	accessTokenKey := fmt.Sprintf("auth:accessToken:%s", adminId)
	hashedToken, err := repository.DBCache.Get(ctx, accessTokenKey).Result()
	if err == redis.Nil {
		return hashedToken, &model.ValidationError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "Authorization token not found or expired",
			Param:   "accessToken",
		}
	} else if err != nil {
		return hashedToken, err
	}

	return hashedToken, nil
}

func (repository *AdminRepository) DeleteAuthTokenInCache(ctx context.Context, adminId uuid.UUID) error {
	accessTokenKey := fmt.Sprintf("auth:accessToken:%s", adminId)

	err := repository.DBCache.Del(ctx, accessTokenKey).Err()
	if err != nil {
		return err
	}

	return nil
}
