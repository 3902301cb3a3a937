package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
	"github.com/vfg2006/ads-status-monitor/internal/scheduler"
	"github.com/vfg2006/ads-status-monitor/pkg/apiErrors"
)

// RunMonitor dispara manualmente uma rotina de monitoramento. O tipo vem da
// URL: ad, ad-group ou keyword.
func RunMonitor(service *scheduler.StatusMonitorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunMonitor")

		monitorType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if monitorType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de monitoramento não especificado", nil)
			return
		}

		entityType, ok := parseMonitorType(monitorType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de monitoramento inválido. Valores aceitos: ad, ad-group, keyword", nil)
			return
		}

		if !service.TriggerManualRun(entityType) {
			apiErrors.WriteError(w, apiErrors.ErrMonitorNotFound, "Rotina de monitoramento não registrada", nil)
			return
		}

		response := map[string]any{
			"message": "Monitoramento iniciado com sucesso",
			"type":    entityType,
		}
		json.NewEncoder(w).Encode(response)
	})
}

// GetMonitorStatus retorna o estado das rotinas de monitoramento
func GetMonitorStatus(service *scheduler.StatusMonitorService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetMonitorStatus")

		json.NewEncoder(w).Encode(service.GetStatus())
	})
}

func parseMonitorType(monitorType string) (domain.EntityType, bool) {
	switch strings.ToLower(monitorType) {
	case "ad", "ads":
		return domain.EntityTypeAd, true
	case "ad-group", "ad-groups":
		return domain.EntityTypeAdGroup, true
	case "keyword", "keywords":
		return domain.EntityTypeKeyword, true
	}
	return "", false
}
