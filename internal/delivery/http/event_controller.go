package http

import (
	"bufio"
	"fmt"
	"time"

	"github.com/dhruvp2403/samajportal/internal/constant"
	tracemiddleware "github.com/dhruvp2403/samajportal/internal/middleware"
	"github.com/dhruvp2403/samajportal/internal/model"
	"github.com/dhruvp2403/samajportal/internal/notify"
	"github.com/dhruvp2403/samajportal/internal/util"
	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Keepalive comments stop idle proxies from reaping open streams.
const sseKeepaliveInterval = 15 * time.Second

type EventController struct {
	Bus    notify.Bus
	Log    *zap.Logger
	Config *koanf.Koanf
}

func NewEventController(bus notify.Bus, zap *zap.Logger, koanf *koanf.Koanf) *EventController {
	return &EventController{
		Bus:    bus,
		Log:    zap,
		Config: koanf,
	}
}

func (controller EventController) StreamCollection(ctx *fiber.Ctx) error {
	var topic string
	switch ctx.Params("collection") {
	case "members":
		topic = notify.TopicMembers
	case "announcements":
		topic = notify.TopicAnnouncements
	default:
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Collection must be one of members or announcements",
			Param:   "collection",
		})
	}

	return controller.stream(ctx, topic)
}

func (controller EventController) StreamGreetings(ctx *fiber.Ctx) error {
	memberId, err := uuid.Parse(ctx.Params("memberId"))
	if err != nil {
		return util.SendErrorResponse(ctx, &model.ValidationError{
			Code:    constant.ERR_VALIDATION_CODE,
			Message: "Member id must be a valid uuid",
			Param:   "memberId",
		})
	}

	return controller.stream(ctx, notify.GreetingTopic(memberId))
}

// stream bridges bus signals onto a server-sent-event response. Signals are
// coalescing hints, so a full channel is drained by dropping: the client
// re-fetches on the next signal anyway.
func (controller EventController) stream(ctx *fiber.Ctx, topic string) error {
	ctx.Set("Content-Type", "text/event-stream")
	ctx.Set("Cache-Control", "no-cache")
	ctx.Set("Connection", "keep-alive")

	signals := make(chan notify.ChangeKind, 8)
	subscription := controller.Bus.Subscribe(topic, func(topic string, kind notify.ChangeKind) {
		select {
		case signals <- kind:
		default:
		}
	})

	log := tracemiddleware.GetLoggerFromContext(ctx, controller.Log)
	log.Debug("event stream opened", zap.String("topic", topic))

	ctx.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(writer *bufio.Writer) {
		defer subscription.Unsubscribe()

		keepalive := time.NewTicker(sseKeepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case kind := <-signals:
				fmt.Fprintf(writer, "event: change\ndata: {\"topic\":%q,\"kind\":%q}\n\n", topic, kind)
			case <-keepalive.C:
				fmt.Fprint(writer, ": keepalive\n\n")
			}

			err := writer.Flush()
			if err != nil {
				log.Debug("event stream closed", zap.String("topic", topic))
				return
			}
		}
	}))

	return nil
}
