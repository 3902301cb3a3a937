package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
)

// Campanhas e grupos removidos ficam fora do escopo: um anúncio que sumir
// junto com eles é registrado como removido pelo detector.
const adStatusQuery = `
	SELECT
		campaign.name,
		ad_group.name,
		ad_group_ad.ad.id,
		ad_group_ad.ad.type,
		ad_group_ad.status,
		ad_group_ad.policy_summary.approval_status
	FROM ad_group_ad
	WHERE campaign.status != 'REMOVED'
		AND ad_group.status != 'REMOVED'
		AND ad_group_ad.status != 'REMOVED'`

func (c *GoogleAdsClient) SearchAds(ctx context.Context, customerID string) ([]adsdomain.SearchRow, error) {
	return c.search(ctx, customerID, adStatusQuery)
}
