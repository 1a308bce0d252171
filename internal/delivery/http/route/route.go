package route

import (
	"github.com/dhruvp2403/samajportal/internal/delivery/http"
	"github.com/dhruvp2403/samajportal/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                    *fiber.App
	AuthMiddleware         *middleware.AuthMiddleware
	AdminController        *http.AdminController
	MemberController       *http.MemberController
	GreetingController     *http.GreetingController
	AnnouncementController *http.AnnouncementController
	DashboardController    *http.DashboardController
	EventController        *http.EventController
}

func (c *RouteConfig) SetupRoute() {
	api := c.App.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authGroup := api.Group("/auth")
	authGroup.Post("/login", c.AdminController.Login)

	memberGroup := api.Group("/members")
	memberGroup.Post("/register", c.MemberController.Register)
	memberGroup.Get("/birthdays/today", c.MemberController.TodaysBirthdays)
	memberGroup.Get("/birthdays/upcoming", c.MemberController.UpcomingBirthdays)
	memberGroup.Post("/:memberId/greetings", c.GreetingController.Submit)
	memberGroup.Get("/:memberId/greetings", c.GreetingController.ListApproved)
	memberGroup.Get("/:memberId/greetings/count", c.GreetingController.Count)

	api.Get("/announcements", c.AnnouncementController.List)

	eventGroup := api.Group("/events")
	eventGroup.Get("/greetings/:memberId", c.EventController.StreamGreetings)
	eventGroup.Get("/:collection", c.EventController.StreamCollection)

	adminGroup := api.Group("/admin", c.AuthMiddleware.ProtectedRoute())
	adminGroup.Post("/logout", c.AdminController.Logout)
	adminGroup.Get("/members", c.MemberController.List)
	adminGroup.Get("/members/stats", c.MemberController.Stats)
	adminGroup.Patch("/members/:memberId/status", c.MemberController.SetStatus)
	adminGroup.Delete("/members/:memberId", c.MemberController.Delete)
	adminGroup.Post("/announcements", c.AnnouncementController.Create)
	adminGroup.Get("/dashboard", c.DashboardController.Summary)
}
