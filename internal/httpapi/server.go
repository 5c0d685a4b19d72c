package httpapi

import (
	"net/http"
	"time"

	"learnhub-backend-go/internal/config"
	"learnhub-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	Moderator  *services.Moderator
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:     []byte(cfg.JWTSecret),
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  time.Duration(cfg.AccessTTLSeconds) * time.Second,
		RefreshTTL: time.Duration(cfg.RefreshTTLSeconds) * time.Second,
	}
	return &Server{
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		Moderator:  services.NewModerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.ModerationModel),
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", s.Register)
		api.Post("/auth/login", s.Login)
		api.Post("/auth/refresh", s.Refresh)
		api.Post("/auth/logout", s.Logout)

		api.Route("/me", func(me chi.Router) {
			me.Use(WithAuth(s.Tokens))
			me.Get("/", s.Me)
			me.Put("/profile", s.UpdateProfile)
			me.Post("/ping", s.Ping)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(WithAuth(s.Tokens))
			admin.Use(RequireRole("ADMIN"))
			admin.Route("/categories", func(categories chi.Router) {
				categories.Get("/", s.AdminListCategories)
				categories.Post("/", s.AdminCreateCategory)
				categories.Put("/{categoryId}", s.AdminUpdateCategory)
				categories.Delete("/{categoryId}", s.AdminDeleteCategory)
			})
			admin.Route("/maintenance/tasks", func(tasks chi.Router) {
				tasks.Get("/", s.MaintenanceTasks)
				tasks.Post("/{taskId}/run", s.RunMaintenanceTask)
			})
			admin.Get("/storage/stats", s.StorageStats)
			admin.Route("/users", func(users chi.Router) {
				users.Get("/", s.AdminListUsers)
				users.Post("/", s.AdminCreateUser)
				users.Put("/{userId}/status", s.AdminSetUserStatus)
				users.Post("/{userId}/roles", s.AdminAssignRole)
				users.Delete("/{userId}/roles/{role}", s.AdminRemoveRole)
			})
			admin.Get("/metrics/history", s.MetricsHistory)
		})

		api.Route("/courses", func(courses chi.Router) {
			courses.Use(WithAuth(s.Tokens))
			courses.Post("/{courseId}/enroll", s.EnrollCourse)
			courses.With(RequireAnyRole("EDITOR", "ADMIN")).Patch("/{courseId}", s.PatchCourse)
			courses.With(RequireAnyRole("EDITOR", "ADMIN")).Delete("/{courseId}", s.DeleteCourse)
		})

		api.Route("/notifications", func(notifications chi.Router) {
			notifications.Use(WithAuth(s.Tokens))
			notifications.Get("/", s.ListNotifications)
			notifications.Patch("/{notificationId}/read", s.MarkNotificationRead)
		})

		api.Route("/moderation", func(moderation chi.Router) {
			moderation.Post("/analyze", s.ModerationAnalyze)
			moderation.Get("/analyze", s.ModerationStats)
		})

		api.Get("/gamification/leaderboard", s.Leaderboard)
		api.Get("/stats/homepage", s.HomepageStats)

		api.Route("/public", func(pub chi.Router) {
			pub.Get("/search", s.PublicSearch)
			pub.Post("/visits", s.TrackVisit)
			pub.Get("/visits/count", s.VisitCount)
			pub.Route("/courses", func(courses chi.Router) {
				courses.Get("/", s.PublicCourses)
				courses.Get("/{slug}", s.PublicCourseDetail)
			})
		})

		api.Route("/media", func(media chi.Router) {
			media.With(WithAuth(s.Tokens)).Post("/uploads", s.Upload)
			media.Get("/assets/{uploadId}/content", s.UploadContent)
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
