package usecase

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/notify"
	"github.com/dhruvp2403/samajportal/internal/repository"
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type AnnouncementUsecase struct {
	AnnouncementRepository *repository.AnnouncementRepository
	Bus                    notify.Bus
	DB                     *pgxpool.Pool
	Log                    *zap.Logger
	Config                 *koanf.Koanf
}

func NewAnnouncementUsecase(announcementRepository *repository.AnnouncementRepository, bus notify.Bus, db *pgxpool.Pool, zap *zap.Logger, koanf *koanf.Koanf) *AnnouncementUsecase {
	return &AnnouncementUsecase{
		AnnouncementRepository: announcementRepository,
		Bus:                    bus,
		DB:                     db,
		Log:                    zap,
		Config:                 koanf,
	}
}

func (usecase *AnnouncementUsecase) Create(ctx *fiber.Ctx, payload model.AnnouncementCreateRequest, adminId uuid.UUID) (model.AnnouncementResponse, error) {
	ctxContext := ctx.Context()
	response := model.AnnouncementResponse{}

	if !model.IsValidAnnouncementType(payload.Type) {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Type must be one of celebratory, condolence or general",
			Param:   "type",
		}
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Title is required to not be empty",
			Param:   "title",
		}
	}

	payloadJson := payload.Payload
	if len(payloadJson) == 0 {
		payloadJson = sonic.NoCopyRawMessage("{}")
	}

	announcement := model.Announcement{
		Id:             uuid.New(),
		Type:           payload.Type,
		Title:          title,
		Body:           payload.Body,
		Payload:        payloadJson,
		CreateDatetime: time.Now().UTC(),
		CreateAdminId:  adminId,
	}

	err := usecase.AnnouncementRepository.Create(ctxContext, announcement)
	if err != nil {
		return response, err
	}

	usecase.Bus.Publish(ctxContext, notify.TopicAnnouncements, notify.ChangeCreated)

	response = model.AnnouncementResponse{
		Id:             announcement.Id,
		Type:           announcement.Type,
		Title:          announcement.Title,
		Body:           announcement.Body,
		Payload:        announcement.Payload,
		CreateDatetime: announcement.CreateDatetime,
	}

	return response, nil
}

func (usecase *AnnouncementUsecase) List(ctx *fiber.Ctx, typeFilter string, limit int) ([]model.AnnouncementResponse, error) {
	if typeFilter != "" && !model.IsValidAnnouncementType(typeFilter) {
		return nil, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Type must be one of celebratory, condolence or general",
			Param:   "type",
		}
	}

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	return usecase.AnnouncementRepository.List(ctx.Context(), typeFilter, limit)
}
