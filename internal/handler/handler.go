package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/oakmont-hospitality/frontdesk/backend/internal/config"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/domain"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/repository"
	"github.com/oakmont-hospitality/frontdesk/backend/internal/shifts"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client
	clock         *shifts.Clock

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client, clock *shifts.Clock) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,
		clock:         clock,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// Everything below requires a valid session.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleManager}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUsers)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUser)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
				r.With(h.preventOperateInitialAdmin).Post("/reset-password", h.ResetUserPassword)
			})
		})

		r.Route("/records", func(r chi.Router) {
			r.Post("/", h.CreateRecord)
			r.Get("/", h.ListRecords)
			r.Get("/reasons", h.ListBanReasons)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.guestRecord)
				r.Get("/", h.GetRecord)
				r.Post("/timeline", h.AddTimelineEntry)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Post("/lift", h.LiftRecord)
				r.Route("/photos", func(r chi.Router) {
					r.Post("/", h.UploadPhoto)
					r.Get("/{photoID}", h.ServePhoto)
					r.Delete("/{photoID}", h.DeletePhoto)
				})
			})
		})

		r.Route("/maintenance", func(r chi.Router) {
			r.Post("/", h.CreateMaintenanceItem)
			r.Get("/", h.ListMaintenanceItems)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.maintenanceItem)
				r.Get("/", h.GetMaintenanceItem)
				r.Patch("/", h.UpdateMaintenanceItem)
				r.With(h.RequiredRole([]domain.Role{domain.RoleManager})).Delete("/", h.DeleteMaintenanceItem)
			})
		})

		r.Route("/room-issues", func(r chi.Router) {
			r.Post("/", h.CreateRoomIssue)
			r.Get("/", h.ListRoomIssues)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.roomIssue)
				r.Get("/", h.GetRoomIssue)
				r.Patch("/", h.UpdateRoomIssue)
				r.Post("/resolve", h.ResolveRoomIssue)
			})
		})

		r.Route("/log-entries", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateLogEntry)
			r.Get("/", h.ListLogEntries)
		})

		r.Route("/housekeeping", func(r chi.Router) {
			r.Post("/", h.CreateHousekeepingRequest)
			r.Get("/", h.ListHousekeepingRequests)
			r.Get("/today", h.ListTodayHousekeeping)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.housekeepingRequest)
				r.Get("/", h.GetHousekeepingRequest)
				r.Patch("/", h.UpdateHousekeepingRequest)
				r.Post("/archive", h.ArchiveHousekeepingRequest)
			})
			r.Post("/service-dates/{dateID}/toggle", h.ToggleServiceDate)
		})

		r.Route("/wakeup-calls", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateWakeupCall)
			r.Get("/", h.ListWakeupCalls)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.wakeupCall)
				r.Get("/", h.GetWakeupCall)
				r.Post("/resolve", h.ResolveWakeupCall)
			})
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Post("/", h.CreateScheduleEntry)
			r.Get("/week", h.GetScheduleWeek)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleEntry)
				r.Patch("/", h.UpdateScheduleEntry)
				r.Delete("/", h.DeleteScheduleEntry)
			})
			r.Route("/uploads", func(r chi.Router) {
				r.Use(h.myInfo)
				r.With(h.scheduleUploadRateLimit).Post("/", h.UploadSchedule)
				r.Get("/", h.ListScheduleUploads)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.scheduleUpload)
					r.Get("/", h.GetScheduleUpload)
					r.Post("/confirm", h.ConfirmScheduleUpload)
					r.Post("/cancel", h.CancelScheduleUpload)
				})
			})
		})
	})
}
