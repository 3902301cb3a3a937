package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount representa uma conta do Google Ads monitorada pelo serviço.
// CustomerID é o identificador numérico usado nas chamadas à API;
// ID é o identificador estável usado nas tabelas e na resolução de webhook.
type AdAccount struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CustomerID string          `json:"customer_id"`
	Status     AdAccountStatus `json:"status"`
}

func (a *AdAccount) IsActive() bool {
	return a != nil && a.Status == AdAccountStatusActive
}
