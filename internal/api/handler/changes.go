package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
	"github.com/vfg2006/ads-status-monitor/pkg/apiErrors"
)

const defaultChangesLimit = 100

// ListAccountChanges lista os registros de mudança mais recentes de uma
// conta, consultando o log de status. Filtros opcionais: type e limit.
func ListAccountChanges(
	accountRepo repository.AccountRepository,
	statusLogRepo repository.StatusLogRepository,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAccountChanges")

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da conta não especificado", nil)
			return
		}

		account, err := accountRepo.GetAccountByID(accountID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar conta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}
		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		entityType := domain.EntityType("")
		if monitorType := r.URL.Query().Get("type"); monitorType != "" {
			parsed, ok := parseMonitorType(monitorType)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de monitoramento inválido. Valores aceitos: ad, ad-group, keyword", nil)
				return
			}
			entityType = parsed
		}

		limit := defaultChangesLimit
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Limite inválido", nil)
				return
			}
			limit = parsed
		}

		records, err := statusLogRepo.ListByAccount(accountID, entityType, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar registros de mudança")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar registros de mudança", nil)
			return
		}

		response := map[string]any{
			"account_id": accountID,
			"changes":    records,
		}
		json.NewEncoder(w).Encode(response)
	})
}
