package adsclient

import (
	"context"

	adsdomain "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/domain"
)

const adGroupStatusQuery = `
	SELECT
		campaign.name,
		ad_group.id,
		ad_group.name,
		ad_group.type,
		ad_group.status
	FROM ad_group
	WHERE campaign.status != 'REMOVED'
		AND ad_group.status != 'REMOVED'`

func (c *GoogleAdsClient) SearchAdGroups(ctx context.Context, customerID string) ([]adsdomain.SearchRow, error) {
	return c.search(ctx, customerID, adGroupStatusQuery)
}
