package googleads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-status-monitor/internal/config"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

// stubClient devolve linhas fixas por tipo de busca, com um erro opcional
// simulando falha de transporte no meio da paginação.
type stubClient struct {
	ads      []adsdomain.SearchRow
	adGroups []adsdomain.SearchRow
	keywords []adsdomain.SearchRow
	err      error
}

func (c *stubClient) SearchAds(_ context.Context, _ string) ([]adsdomain.SearchRow, error) {
	return c.ads, c.err
}

func (c *stubClient) SearchAdGroups(_ context.Context, _ string) ([]adsdomain.SearchRow, error) {
	return c.adGroups, c.err
}

func (c *stubClient) SearchKeywords(_ context.Context, _ string) ([]adsdomain.SearchRow, error) {
	return c.keywords, c.err
}

var stubAccount = &domain.AdAccount{
	ID:         "ACC001",
	Name:       "Loja A",
	CustomerID: "1234567890",
	Status:     domain.AdAccountStatusActive,
}

func adRow(id, status, approval string) adsdomain.SearchRow {
	row := adsdomain.SearchRow{
		Campaign: &adsdomain.Campaign{Name: "Campanha Verão", Status: "ENABLED"},
		AdGroup:  &adsdomain.AdGroup{ID: "ag-1", Name: "Grupo Principal"},
		AdGroupAd: &adsdomain.AdGroupAd{
			Status: status,
			Ad:     &adsdomain.Ad{ID: id, Type: "RESPONSIVE_SEARCH_AD"},
		},
	}
	if approval != "" {
		row.AdGroupAd.PolicySummary = &adsdomain.PolicySummary{ApprovalStatus: approval}
	}
	return row
}

func TestFetchStatusSnapshot_Anuncios(t *testing.T) {
	ctx := context.Background()

	t.Run("Mapeia as linhas preservando a ordem da busca", func(t *testing.T) {
		client := &stubClient{ads: []adsdomain.SearchRow{
			adRow("ad-1", "ENABLED", "APPROVED"),
			adRow("ad-2", "PAUSED", "UNDER_REVIEW"),
		}}
		integrator := New(&config.Config{}, client)

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityTypeAd)

		assert.NoError(t, err)
		assert.Equal(t, 2, snapshot.Len())

		records := snapshot.Records()
		assert.Equal(t, "ad-1", records[0].ID)
		assert.Equal(t, domain.StatusEnabled, records[0].Status)
		assert.Equal(t, domain.ApprovalApproved, records[0].SecondaryStatus)
		assert.Equal(t, "Campanha Verão", records[0].CampaignName)
		assert.Equal(t, "Grupo Principal", records[0].AdGroupName)
		assert.Equal(t, "RESPONSIVE_SEARCH_AD", records[0].Kind)

		assert.Equal(t, "ad-2", records[1].ID)
		assert.Equal(t, domain.StatusPaused, records[1].Status)
		assert.Equal(t, domain.ApprovalUnderReview, records[1].SecondaryStatus)
	})

	t.Run("Aprovação ausente é normalizada para UNKNOWN", func(t *testing.T) {
		client := &stubClient{ads: []adsdomain.SearchRow{adRow("ad-1", "ENABLED", "")}}
		integrator := New(&config.Config{}, client)

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityTypeAd)

		assert.NoError(t, err)
		record, ok := snapshot.Get("ad-1")
		assert.True(t, ok)
		assert.Equal(t, domain.StatusUnknown, record.SecondaryStatus)
	})

	t.Run("Linha sem id é ignorada sem descartar as demais", func(t *testing.T) {
		semID := adRow("", "ENABLED", "APPROVED")
		semAd := adsdomain.SearchRow{AdGroupAd: &adsdomain.AdGroupAd{Status: "ENABLED"}}

		client := &stubClient{ads: []adsdomain.SearchRow{
			adRow("ad-1", "ENABLED", "APPROVED"),
			semID,
			semAd,
			adRow("ad-2", "PAUSED", "APPROVED"),
		}}
		integrator := New(&config.Config{}, client)

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityTypeAd)

		assert.NoError(t, err)
		assert.Equal(t, 2, snapshot.Len())
		assert.True(t, snapshot.Has("ad-1"))
		assert.True(t, snapshot.Has("ad-2"))
	})

	t.Run("Falha de transporte devolve o acumulado junto com o erro", func(t *testing.T) {
		transportErr := errors.New("timeout")
		client := &stubClient{
			ads: []adsdomain.SearchRow{adRow("ad-1", "ENABLED", "APPROVED")},
			err: transportErr,
		}
		integrator := New(&config.Config{}, client)

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityTypeAd)

		assert.ErrorIs(t, err, transportErr)
		assert.NotNil(t, snapshot)
		assert.Equal(t, 1, snapshot.Len())
	})

	t.Run("Tipo de entidade desconhecido devolve snapshot vazio e erro", func(t *testing.T) {
		integrator := New(&config.Config{}, &stubClient{})

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityType("CAMPAIGN"))

		assert.Error(t, err)
		assert.NotNil(t, snapshot)
		assert.Equal(t, 0, snapshot.Len())
	})
}

func TestFetchStatusSnapshot_GruposEPalavrasChave(t *testing.T) {
	ctx := context.Background()

	t.Run("Grupo de anúncios mapeia id, tipo e status", func(t *testing.T) {
		client := &stubClient{adGroups: []adsdomain.SearchRow{
			{
				Campaign: &adsdomain.Campaign{Name: "Campanha Verão"},
				AdGroup:  &adsdomain.AdGroup{ID: "ag-1", Name: "Grupo Principal", Type: "SEARCH_STANDARD", Status: "PAUSED"},
			},
			{Campaign: &adsdomain.Campaign{Name: "Campanha Verão"}}, // sem adGroup
		}}
		integrator := New(&config.Config{}, client)

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityTypeAdGroup)

		assert.NoError(t, err)
		assert.Equal(t, 1, snapshot.Len())

		record, _ := snapshot.Get("ag-1")
		assert.Equal(t, domain.StatusPaused, record.Status)
		assert.Equal(t, "SEARCH_STANDARD", record.Kind)
		assert.Equal(t, "Grupo Principal", record.AdGroupName)
		// Grupos não têm eixo de aprovação; o campo fica zerado e o descritor
		// decide que ele não participa da comparação.
		assert.Empty(t, record.SecondaryStatus)
	})

	t.Run("Palavra-chave mapeia criterionId, correspondência e aprovação", func(t *testing.T) {
		client := &stubClient{keywords: []adsdomain.SearchRow{
			{
				Campaign: &adsdomain.Campaign{Name: "Campanha Verão"},
				AdGroup:  &adsdomain.AdGroup{ID: "ag-1", Name: "Grupo Principal"},
				AdGroupCriterion: &adsdomain.AdGroupCriterion{
					CriterionID:    "kw-1",
					Status:         "ENABLED",
					ApprovalStatus: "DISAPPROVED",
					Keyword:        &adsdomain.KeywordInfo{Text: "óculos de sol", MatchType: "EXACT"},
				},
			},
			{
				AdGroupCriterion: &adsdomain.AdGroupCriterion{
					CriterionID: "kw-2",
					Status:      "ENABLED",
				},
			},
		}}
		integrator := New(&config.Config{}, client)

		snapshot, err := integrator.FetchStatusSnapshot(ctx, stubAccount, domain.EntityTypeKeyword)

		assert.NoError(t, err)
		assert.Equal(t, 2, snapshot.Len())

		first, _ := snapshot.Get("kw-1")
		assert.Equal(t, domain.StatusEnabled, first.Status)
		assert.Equal(t, domain.ApprovalDisapproved, first.SecondaryStatus)
		assert.Equal(t, "EXACT", first.Kind)

		second, _ := snapshot.Get("kw-2")
		assert.Equal(t, domain.StatusUnknown, second.SecondaryStatus)
		assert.Empty(t, second.Kind)
	})
}
