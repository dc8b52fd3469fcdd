package handler

import (
	"net/http"

	"github.com/vfg2006/solar-pipeline-api/infrastructure/repository"
	"github.com/vfg2006/solar-pipeline-api/internal/api/handler/router"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/authenticating"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/forecasting"
	"github.com/vfg2006/solar-pipeline-api/internal/usecases/pipeline"
	"github.com/vfg2006/solar-pipeline-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Forecast(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/forecast",
			Method:      http.MethodGet,
			Handler:     GetForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/forecast/history",
			Method:      http.MethodGet,
			Handler:     GetForecastHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Pipeline(service pipeline.PipelineService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/pipeline/stages",
			Method:      http.MethodGet,
			Handler:     GetPipelineStages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tenants/:id/sla/preview",
			Method:      http.MethodGet,
			Handler:     PreviewSLA(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Project(service pipeline.PipelineService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/projects/:id/schedule",
			Method:      http.MethodPost,
			Handler:     InitializeProjectSchedule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/projects/:id/advance",
			Method:      http.MethodPost,
			Handler:     AdvanceProjectStage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Notification(repo repository.NotificationRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tenants/:id/notifications",
			Method:      http.MethodGet,
			Handler:     ListNotifications(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
