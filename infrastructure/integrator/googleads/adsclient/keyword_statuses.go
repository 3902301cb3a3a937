package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
)

const keywordStatusQuery = `
	SELECT
		campaign.name,
		ad_group.name,
		ad_group_criterion.criterion_id,
		ad_group_criterion.keyword.text,
		ad_group_criterion.keyword.match_type,
		ad_group_criterion.status,
		ad_group_criterion.approval_status
	FROM keyword_view
	WHERE campaign.status != 'REMOVED'
		AND ad_group.status != 'REMOVED'
		AND ad_group_criterion.status != 'REMOVED'`

func (c *GoogleAdsClient) SearchKeywords(ctx context.Context, customerID string) ([]adsdomain.SearchRow, error) {
	return c.search(ctx, customerID, keywordStatusQuery)
}
