package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jazeyttv/jazey-dev/internal/middleware"
	"github.com/jazeyttv/jazey-dev/internal/modules/auth"
	"github.com/jazeyttv/jazey-dev/internal/modules/blog"
	"github.com/jazeyttv/jazey-dev/internal/modules/changelog"
	"github.com/jazeyttv/jazey-dev/internal/modules/contact"
	"github.com/jazeyttv/jazey-dev/internal/modules/coupon"
	"github.com/jazeyttv/jazey-dev/internal/modules/portfolio"
	"github.com/jazeyttv/jazey-dev/internal/modules/review"
	"github.com/jazeyttv/jazey-dev/internal/modules/stats"
	"github.com/jazeyttv/jazey-dev/internal/modules/submission"
	"github.com/jazeyttv/jazey-dev/internal/modules/ticket"
	"github.com/jazeyttv/jazey-dev/internal/modules/track"
	"github.com/jazeyttv/jazey-dev/internal/modules/widget"
	"github.com/jazeyttv/jazey-dev/internal/pkg/discord"
	"github.com/jazeyttv/jazey-dev/internal/pkg/mail"
	"github.com/jazeyttv/jazey-dev/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	st := a.store

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.NotFound(c) })

	authMW := middleware.AdminAuth(a.cfg.Admin)
	contactLimit := middleware.NewRateLimiter(5, 15*time.Minute,
		"Too many submissions. Please try again in 15 minutes.")
	loginLimit := middleware.NewRateLimiter(10, 15*time.Minute,
		"Too many login attempts.")

	notifier := discord.New(a.cfg.DiscordWebhookURL, a.cfg.SiteName, a.logger)
	mailer := mail.New(a.cfg.Mail)

	api := r.Group("/api")

	contact.NewHandler(st, notifier, mailer, a.logger).RegisterRoutes(api, contactLimit.Middleware())
	track.NewHandler(st).RegisterRoutes(api)
	ticket.NewHandler(st, notifier).RegisterRoutes(api)
	widget.NewHandler(a.cfg.WidgetURL, a.logger).RegisterRoutes(api)

	auth.NewHandler(a.cfg.Admin, a.logger).RegisterRoutes(api, loginLimit.Middleware())
	submission.NewHandler(st, notifier, mailer, a.logger).RegisterRoutes(api, authMW)
	stats.NewHandler(st).RegisterRoutes(api, authMW)

	blog.NewHandler(st).RegisterRoutes(api, authMW)
	review.NewHandler(st).RegisterRoutes(api, authMW)
	portfolio.NewHandler(st).RegisterRoutes(api, authMW)
	coupon.NewHandler(st).RegisterRoutes(api, authMW)
	changelog.NewHandler(st).RegisterRoutes(api, authMW)
}
