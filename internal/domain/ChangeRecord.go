package domain

import (
	"time"
)

// ChangeRecord é uma transição detectada entre dois snapshots consecutivos.
// Registros são imutáveis depois de gravados no log de status.
type ChangeRecord struct {
	Timestamp               time.Time  `json:"timestamp"`
	AccountName             string     `json:"account_name"`
	AccountID               string     `json:"account_id"`
	CampaignName            string     `json:"campaign_name"`
	AdGroupName             string     `json:"ad_group_name"`
	EntityID                string     `json:"entity_id"`
	EntityType              EntityType `json:"entity_type"`
	Kind                    string     `json:"kind"`
	PreviousStatus          string     `json:"previous_status"`
	NewStatus               string     `json:"new_status"`
	PreviousSecondaryStatus string     `json:"previous_secondary_status"`
	NewSecondaryStatus      string     `json:"new_secondary_status"`
	ChangeType              string     `json:"change_type"`
}
