package googleads

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-status-monitor/internal/config"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

// Integrator é o buscador de estado atual das entidades. O snapshot
// retornado nunca é nil: em falha de transporte ele contém o que foi
// acumulado até o erro (possivelmente nada), e o erro volta junto para o
// chamador decidir o log — a execução degrada para "nada encontrado" em vez
// de abortar.
type Integrator interface {
	FetchStatusSnapshot(ctx context.Context, account *domain.AdAccount, entityType domain.EntityType) (*domain.Snapshot, error)
}

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GoogleAdsIntegrator) FetchStatusSnapshot(
	ctx context.Context,
	account *domain.AdAccount,
	entityType domain.EntityType,
) (*domain.Snapshot, error) {
	var rows []adsdomain.SearchRow
	var err error

	switch entityType {
	case domain.EntityTypeAd:
		rows, err = s.Client.SearchAds(ctx, account.CustomerID)
	case domain.EntityTypeAdGroup:
		rows, err = s.Client.SearchAdGroups(ctx, account.CustomerID)
	case domain.EntityTypeKeyword:
		rows, err = s.Client.SearchKeywords(ctx, account.CustomerID)
	default:
		return domain.NewSnapshot(), fmt.Errorf("tipo de entidade desconhecido: %s", entityType)
	}

	snapshot := domain.NewSnapshot()
	malformed := 0

	for i := range rows {
		record := mapRow(entityType, &rows[i])
		if record == nil {
			// Linha sem identificador é bug de formato de dados, não falha
			// transitória: registra individualmente e segue, sem mascarar.
			malformed++
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"entity_type": entityType,
				"row_index":   i,
			}).Error("Linha da API sem identificador de entidade, ignorando")
			continue
		}
		snapshot.Add(record)
	}

	if malformed > 0 {
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"entity_type": entityType,
			"malformed":   malformed,
		}).Warn("Linhas malformadas ignoradas na busca de status")
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  account.ID,
		"entity_type": entityType,
		"entities":    snapshot.Len(),
	}).Debug("Busca de status concluída")

	return snapshot, err
}

// mapRow converte uma linha da API no registro interno, normalizando o eixo
// secundário ausente para UNKNOWN. Retorna nil para linhas sem id.
func mapRow(entityType domain.EntityType, row *adsdomain.SearchRow) *domain.EntitySnapshot {
	record := &domain.EntitySnapshot{}

	if row.Campaign != nil {
		record.CampaignName = row.Campaign.Name
	}
	if row.AdGroup != nil {
		record.AdGroupName = row.AdGroup.Name
	}

	switch entityType {
	case domain.EntityTypeAd:
		if row.AdGroupAd == nil || row.AdGroupAd.Ad == nil || row.AdGroupAd.Ad.ID == "" {
			return nil
		}
		record.ID = row.AdGroupAd.Ad.ID
		record.Kind = row.AdGroupAd.Ad.Type
		record.Status = domain.EntityStatus(row.AdGroupAd.Status)
		record.SecondaryStatus = domain.StatusUnknown
		if row.AdGroupAd.PolicySummary != nil && row.AdGroupAd.PolicySummary.ApprovalStatus != "" {
			record.SecondaryStatus = domain.EntityStatus(row.AdGroupAd.PolicySummary.ApprovalStatus)
		}

	case domain.EntityTypeAdGroup:
		if row.AdGroup == nil || row.AdGroup.ID == "" {
			return nil
		}
		record.ID = row.AdGroup.ID
		record.Kind = row.AdGroup.Type
		record.Status = domain.EntityStatus(row.AdGroup.Status)

	case domain.EntityTypeKeyword:
		if row.AdGroupCriterion == nil || row.AdGroupCriterion.CriterionID == "" {
			return nil
		}
		record.ID = row.AdGroupCriterion.CriterionID
		record.Status = domain.EntityStatus(row.AdGroupCriterion.Status)
		record.SecondaryStatus = domain.StatusUnknown
		if row.AdGroupCriterion.ApprovalStatus != "" {
			record.SecondaryStatus = domain.EntityStatus(row.AdGroupCriterion.ApprovalStatus)
		}
		if row.AdGroupCriterion.Keyword != nil {
			record.Kind = row.AdGroupCriterion.Keyword.MatchType
		}
	}

	return record
}
