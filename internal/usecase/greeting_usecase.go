package usecase

import (
	"strings"
	"time"

	"github.com/dhruvp2403/samajportal/internal/constant"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/moderation"
	"github.com/dhruvp2403/samajportal/internal/notify"
	"github.com/dhruvp2403/samajportal/internal/observability"
	"github.com/dhruvp2403/samajportal/internal/repository"
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

type GreetingUsecase struct {
	GreetingRepository *repository.GreetingRepository
	Moderation         *moderation.Engine
	Bus                notify.Bus
	DB                 *pgxpool.Pool
	Log                *zap.Logger
	Config             *koanf.Koanf
}

func NewGreetingUsecase(greetingRepository *repository.GreetingRepository, engine *moderation.Engine, bus notify.Bus, db *pgxpool.Pool, zap *zap.Logger, koanf *koanf.Koanf) *GreetingUsecase {
	return &GreetingUsecase{
		GreetingRepository: greetingRepository,
		Moderation:         engine,
		Bus:                bus,
		DB:                 db,
		Log:                zap,
		Config:             koanf,
	}
}

// Submit runs the moderation gate exactly once and freezes the decision
// into is_approved. Flagged greetings are persisted too; they just never
// show up in the public feed.
func (usecase *GreetingUsecase) Submit(ctx *fiber.Ctx, memberId uuid.UUID, payload model.GreetingSubmitRequest) (model.GreetingSubmitResponse, error) {
	ctxContext := ctx.Context()
	response := model.GreetingSubmitResponse{}

	exists, err := usecase.GreetingRepository.CheckMemberExists(ctxContext, memberId)
	if err != nil {
		return response, err
	}

	if exists != 1 {
		return response, &model.NotFoundError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: "Member not found",
			Param:   "memberId",
		}
	}

	senderName := strings.TrimSpace(payload.SenderName)
	if senderName == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Sender name is required to not be empty",
			Param:   "senderName",
		}
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		return response, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Message is required to not be empty",
			Param:   "message",
		}
	}

	result := usecase.Moderation.Moderate(message)
	if !result.Accepted {
		observability.WithContext(ctx.UserContext(), usecase.Log).Info("greeting flagged for review",
			zap.String("memberId", memberId.String()),
			zap.String("term", result.Term))
	}

	greeting := model.Greeting{
		Id:             uuid.New(),
		MemberId:       memberId,
		SenderName:     senderName,
		Message:        message,
		IsApproved:     result.Accepted,
		CreateDatetime: time.Now().UTC(),
	}

	err = usecase.GreetingRepository.Create(ctxContext, greeting)
	if err != nil {
		return response, err
	}

	usecase.Bus.Publish(ctxContext, notify.GreetingTopic(memberId), notify.ChangeCreated)

	response.Accepted = result.Accepted
	response.Greeting = model.GreetingResponse{
		Id:             greeting.Id,
		MemberId:       greeting.MemberId,
		SenderName:     greeting.SenderName,
		Message:        greeting.Message,
		CreateDatetime: greeting.CreateDatetime,
	}

	return response, nil
}

func (usecase *GreetingUsecase) ListApproved(ctx *fiber.Ctx, memberId uuid.UUID) ([]model.GreetingResponse, error) {
	return usecase.GreetingRepository.ListApproved(ctx.Context(), memberId)
}

func (usecase *GreetingUsecase) Count(ctx *fiber.Ctx, memberId uuid.UUID) (int, error) {
	return usecase.GreetingRepository.CountApproved(ctx.Context(), memberId)
}
