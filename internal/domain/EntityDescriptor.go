package domain

import (
	"strings"
)

// SummaryRule classifica um changeType em uma categoria do resumo de alerta.
// As regras são avaliadas na ordem declarada e a primeira que casar vence,
// portanto cada registro contribui para exatamente uma categoria. A ordem
// resolve ambiguidades de substring (DISAPPROVED antes de APPROVED,
// AD_REMOVED antes de REMOVED).
type SummaryRule struct {
	Category string // chave estável da categoria
	Label    string // rótulo exibido na mensagem de alerta
	Equals   string // casa por igualdade exata, quando não vazio
	Contains string // casa por substring, quando não vazio
}

func (r SummaryRule) Matches(changeType string) bool {
	if r.Equals != "" {
		return changeType == r.Equals
	}
	if r.Contains != "" {
		return strings.Contains(changeType, r.Contains)
	}
	return false
}

// EntityDescriptor parametriza o pipeline de monitoramento para um tipo de
// entidade: rótulos de changeType, conjuntos enumerados de cada eixo de
// status e as regras de sumarização. Os três scripts originais viram três
// instâncias deste descritor sobre um único detector.
type EntityDescriptor struct {
	Type               EntityType
	NewChangeType      string
	RemovedChangeType  string
	HasSecondaryStatus bool
	KnownStatuses      []EntityStatus
	KnownSecondary     []EntityStatus
	SummaryRules       []SummaryRule
	OtherLabel         string // rótulo da categoria residual
	AlertTitle         string // título da seção na mensagem de alerta
}

func (d *EntityDescriptor) IsKnownStatus(status EntityStatus) bool {
	for _, known := range d.KnownStatuses {
		if status == known {
			return true
		}
	}
	return false
}

func (d *EntityDescriptor) IsKnownSecondary(status EntityStatus) bool {
	for _, known := range d.KnownSecondary {
		if status == known {
			return true
		}
	}
	return false
}

var primaryStatuses = []EntityStatus{StatusEnabled, StatusPaused, StatusRemoved}

var approvalStatuses = []EntityStatus{
	ApprovalApproved,
	ApprovalApprovedLimited,
	ApprovalDisapproved,
	ApprovalUnderReview,
}

var AdDescriptor = &EntityDescriptor{
	Type:               EntityTypeAd,
	NewChangeType:      "NEW_AD",
	RemovedChangeType:  "AD_REMOVED",
	HasSecondaryStatus: true,
	KnownStatuses:      primaryStatuses,
	KnownSecondary:     approvalStatuses,
	AlertTitle:         "anúncios",
	OtherLabel:         "Outras alterações",
	SummaryRules: []SummaryRule{
		{Category: "new", Label: "Novos anúncios", Equals: "NEW_AD"},
		{Category: "removed", Label: "Removidos", Contains: "REMOVED"},
		{Category: "enabled", Label: "Ativados", Contains: "ENABLED"},
		{Category: "paused", Label: "Pausados", Contains: "PAUSED"},
		{Category: "disapproved", Label: "Reprovados", Contains: "DISAPPROVED"},
		{Category: "under_review", Label: "Em análise", Contains: "UNDER_REVIEW"},
		{Category: "approved_limited", Label: "Aprovados com limitação", Contains: "APPROVED_LIMITED"},
		{Category: "approved", Label: "Aprovados", Contains: "APPROVED"},
	},
}

var AdGroupDescriptor = &EntityDescriptor{
	Type:               EntityTypeAdGroup,
	NewChangeType:      "NEW_AD_GROUP",
	RemovedChangeType:  "AD_GROUP_REMOVED",
	HasSecondaryStatus: false,
	KnownStatuses:      primaryStatuses,
	AlertTitle:         "grupos de anúncios",
	OtherLabel:         "Outras alterações",
	SummaryRules: []SummaryRule{
		{Category: "new", Label: "Novos grupos", Equals: "NEW_AD_GROUP"},
		{Category: "removed", Label: "Removidos", Contains: "REMOVED"},
		{Category: "enabled", Label: "Ativados", Contains: "ENABLED"},
		{Category: "paused", Label: "Pausados", Contains: "PAUSED"},
	},
}

var KeywordDescriptor = &EntityDescriptor{
	Type:               EntityTypeKeyword,
	NewChangeType:      "NEW_KEYWORD",
	RemovedChangeType:  "KEYWORD_REMOVED",
	HasSecondaryStatus: true,
	KnownStatuses:      primaryStatuses,
	KnownSecondary:     approvalStatuses,
	AlertTitle:         "palavras-chave",
	OtherLabel:         "Outras alterações",
	SummaryRules: []SummaryRule{
		{Category: "new", Label: "Novas palavras-chave", Equals: "NEW_KEYWORD"},
		{Category: "removed", Label: "Removidas", Contains: "REMOVED"},
		{Category: "enabled", Label: "Ativadas", Contains: "ENABLED"},
		{Category: "paused", Label: "Pausadas", Contains: "PAUSED"},
		{Category: "disapproved", Label: "Reprovadas", Contains: "DISAPPROVED"},
		{Category: "under_review", Label: "Em análise", Contains: "UNDER_REVIEW"},
		{Category: "approved_limited", Label: "Aprovadas com limitação", Contains: "APPROVED_LIMITED"},
		{Category: "approved", Label: "Aprovadas", Contains: "APPROVED"},
	},
}

// Descriptors lista os tipos monitorados na ordem em que os agendadores
// são registrados.
var Descriptors = []*EntityDescriptor{AdDescriptor, AdGroupDescriptor, KeywordDescriptor}

func DescriptorFor(entityType EntityType) (*EntityDescriptor, bool) {
	for _, descriptor := range Descriptors {
		if descriptor.Type == entityType {
			return descriptor, true
		}
	}
	return nil, false
}
