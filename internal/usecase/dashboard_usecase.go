package usecase

import (
	"time"

	"github.com/dhruvp2403/samajportal/internal/birthday"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// Greetings this far back count as "recent" on the dashboard.
const recentGreetingWindow = 30 * 24 * time.Hour

type DashboardUsecase struct {
	MemberRepository       *repository.MemberRepository
	GreetingRepository     *repository.GreetingRepository
	AnnouncementRepository *repository.AnnouncementRepository
	Log                    *zap.Logger
	Config                 *koanf.Koanf
}

func NewDashboardUsecase(memberRepository *repository.MemberRepository, greetingRepository *repository.GreetingRepository, announcementRepository *repository.AnnouncementRepository, zap *zap.Logger, koanf *koanf.Koanf) *DashboardUsecase {
	return &DashboardUsecase{
		MemberRepository:       memberRepository,
		GreetingRepository:     greetingRepository,
		AnnouncementRepository: announcementRepository,
		Log:                    zap,
		Config:                 koanf,
	}
}

// Summary recomputes every count on each call. A failed sub-query degrades
// its slice of the summary to zero instead of failing the whole aggregate:
// partial dashboard data beats none.
func (usecase *DashboardUsecase) Summary(ctx *fiber.Ctx) model.DashboardSummary {
	ctxContext := ctx.Context()
	summary := model.DashboardSummary{}

	stats, err := usecase.MemberRepository.CountByStatus(ctxContext)
	if err != nil {
		usecase.Log.Warn("dashboard member stats query failed", zap.Error(err))
	} else {
		summary.MemberStats = stats
	}

	announcementCount, err := usecase.AnnouncementRepository.Count(ctxContext)
	if err != nil {
		usecase.Log.Warn("dashboard announcement count query failed", zap.Error(err))
	} else {
		summary.AnnouncementCount = announcementCount
	}

	since := time.Now().UTC().Add(-recentGreetingWindow)
	greetingCount, err := usecase.GreetingRepository.CountRecentApproved(ctxContext, since)
	if err != nil {
		usecase.Log.Warn("dashboard greeting count query failed", zap.Error(err))
	} else {
		summary.RecentGreetingCount = greetingCount
	}

	approved, err := usecase.MemberRepository.ListApproved(ctxContext)
	if err != nil {
		usecase.Log.Warn("dashboard birthday query failed", zap.Error(err))
	} else {
		summary.TodaysBirthdayCount = len(birthday.TodaysBirthdays(approved, time.Now().UTC()))
	}

	return summary
}
