package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-status-monitor/internal/api/handler/router"
	"github.com/vfg2006/ads-status-monitor/internal/scheduler"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Monitors(service *scheduler.StatusMonitorService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/monitors/:type/run",
			Method:  http.MethodPost,
			Handler: RunMonitor(service),
		},
		{
			Path:    "/v1/monitors/status",
			Method:  http.MethodGet,
			Handler: GetMonitorStatus(service),
		},
	}
}

func Changes(accountRepo repository.AccountRepository, statusLogRepo repository.StatusLogRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/changes",
			Method:  http.MethodGet,
			Handler: ListAccountChanges(accountRepo, statusLogRepo),
		},
	}
}
