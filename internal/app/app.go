package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"frontdesk/internal/config"
	"frontdesk/internal/domain"
	"frontdesk/internal/middleware"
	"frontdesk/internal/modules/billing"
	"frontdesk/internal/modules/frontdesk"
	"frontdesk/internal/modules/rate"
	jwtsvc "frontdesk/internal/pkg/jwt"
	"frontdesk/internal/repository"
)

// App is the wired HTTP surface plus the pieces main drives directly.
type App struct {
	Router *gin.Engine
	Board  *frontdesk.Board
	Hub    *frontdesk.Hub
	JWT    *jwtsvc.Service
}

// New wires repositories, services and routes. now may be nil.
func New(cfg *config.Config, db *gorm.DB, log *zap.Logger, now func() time.Time) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	loc := cfg.HotelTimezone
	today := func() domain.Date { return domain.Today(now(), loc) }

	hub := frontdesk.NewHub(log.Named("ws"))
	board := frontdesk.NewBoard(bookingRepo, today, log.Named("board"))
	board.OnChange(hub.PublishSnapshot)

	rateHandler := rate.NewHandler(rate.NewService(roomRepo, log.Named("rate")))
	deskHandler := frontdesk.NewHandler(
		frontdesk.NewService(bookingRepo, board, today, log.Named("frontdesk")),
		board, hub, cfg.CORSAllowedOrigins,
	)
	billingHandler := billing.NewHandler(billing.NewService(bookingRepo, board, cfg.HotelName, log.Named("billing")))

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log.Named("http")),
		middleware.Recovery(log),
		middleware.CORS(cfg.CORSAllowedOrigins, cfg.IsProd()),
		middleware.RateLimit(cfg.RateLimitPerMin, log),
	)

	r.GET("/healthz", func(c *gin.Context) {
		snap := board.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"ws_clients":   hub.Count(),
			"refreshed_at": snap.RefreshedAt,
			"last_error":   snap.LastError,
		})
	})

	v1 := r.Group("/api/v1")
	staff := v1.Group("")
	staff.Use(middleware.JWTAuth(j))
	{
		rateHandler.RegisterRoutes(staff, middleware.ManagerOnly())
		deskHandler.RegisterRoutes(staff)
		billingHandler.RegisterRoutes(staff)
	}

	return &App{Router: r, Board: board, Hub: hub, JWT: j}
}
