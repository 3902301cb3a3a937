package monitoring

import (
	"strings"
	"time"

	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

// DetectChanges compara o snapshot anterior com o atual e produz os registros
// de mudança na ordem: entidades do snapshot atual na ordem da busca, depois
// entidades que existiam apenas no snapshot anterior, na ordem de persistência.
//
// A primeira execução (snapshot anterior vazio) não produz registro algum:
// sem baseline, tudo seria classificado como novo e o alerta inundaria o
// canal. O teste é sobre o snapshot inteiro, não sobre o id individual.
func DetectChanges(
	descriptor *domain.EntityDescriptor,
	account *domain.AdAccount,
	previous *domain.Snapshot,
	current *domain.Snapshot,
	now time.Time,
) []*domain.ChangeRecord {
	if previous.IsEmpty() {
		return nil
	}

	changes := make([]*domain.ChangeRecord, 0)

	for _, entity := range current.Records() {
		before, known := previous.Get(entity.ID)
		if !known {
			changes = append(changes, newEntityRecord(descriptor, account, entity, now))
			continue
		}

		if record := transitionRecord(descriptor, account, before, entity, now); record != nil {
			changes = append(changes, record)
		}
	}

	for _, before := range previous.Records() {
		if current.Has(before.ID) {
			continue
		}
		changes = append(changes, removedEntityRecord(descriptor, account, before, now))
	}

	return changes
}

// newEntityRecord registra uma entidade vista pela primeira vez depois de já
// existir um baseline.
func newEntityRecord(
	descriptor *domain.EntityDescriptor,
	account *domain.AdAccount,
	entity *domain.EntitySnapshot,
	now time.Time,
) *domain.ChangeRecord {
	record := baseRecord(descriptor, account, entity, now)
	record.PreviousStatus = domain.NotApplicable
	record.NewStatus = string(entity.Status)
	record.PreviousSecondaryStatus = domain.NotApplicable
	if descriptor.HasSecondaryStatus {
		record.NewSecondaryStatus = string(entity.SecondaryStatus)
	}
	record.ChangeType = descriptor.NewChangeType

	return record
}

// transitionRecord compara os dois eixos de status campo a campo e emite no
// máximo um registro carregando os dois pares antes/depois. Nomes, campanhas
// e timestamps não entram na comparação.
func transitionRecord(
	descriptor *domain.EntityDescriptor,
	account *domain.AdAccount,
	before *domain.EntitySnapshot,
	entity *domain.EntitySnapshot,
	now time.Time,
) *domain.ChangeRecord {
	statusChanged := before.Status != entity.Status
	secondaryChanged := descriptor.HasSecondaryStatus && before.SecondaryStatus != entity.SecondaryStatus

	if !statusChanged && !secondaryChanged {
		return nil
	}

	record := baseRecord(descriptor, account, entity, now)
	record.PreviousStatus = string(before.Status)
	record.NewStatus = string(entity.Status)
	if descriptor.HasSecondaryStatus {
		record.PreviousSecondaryStatus = string(before.SecondaryStatus)
		record.NewSecondaryStatus = string(entity.SecondaryStatus)
	}
	record.ChangeType = composeChangeType(descriptor, entity, statusChanged, secondaryChanged)

	return record
}

// removedEntityRecord registra uma entidade que sumiu da busca atual. O novo
// status é forçado para REMOVED independentemente do último status conhecido;
// a entidade pode ter sido removida diretamente ou saído de escopo junto com
// a campanha.
func removedEntityRecord(
	descriptor *domain.EntityDescriptor,
	account *domain.AdAccount,
	before *domain.EntitySnapshot,
	now time.Time,
) *domain.ChangeRecord {
	record := baseRecord(descriptor, account, before, now)
	record.PreviousStatus = string(before.Status)
	record.NewStatus = string(domain.StatusRemoved)
	if descriptor.HasSecondaryStatus {
		record.PreviousSecondaryStatus = string(before.SecondaryStatus)
		record.NewSecondaryStatus = domain.NotApplicable
	}
	record.ChangeType = descriptor.RemovedChangeType

	return record
}

// composeChangeType monta o rótulo composto a partir de até dois fragmentos
// independentes, sempre com o fragmento de status antes do de aprovação.
func composeChangeType(
	descriptor *domain.EntityDescriptor,
	entity *domain.EntitySnapshot,
	statusChanged bool,
	secondaryChanged bool,
) string {
	fragments := make([]string, 0, 2)

	if statusChanged {
		if descriptor.IsKnownStatus(entity.Status) {
			fragments = append(fragments, string(entity.Status))
		} else {
			fragments = append(fragments, domain.StatusChangedFallback)
		}
	}

	if secondaryChanged {
		if descriptor.IsKnownSecondary(entity.SecondaryStatus) {
			fragments = append(fragments, string(entity.SecondaryStatus))
		} else {
			fragments = append(fragments, domain.ApprovalChangedFallback)
		}
	}

	return strings.Join(fragments, " + ")
}

func baseRecord(
	descriptor *domain.EntityDescriptor,
	account *domain.AdAccount,
	entity *domain.EntitySnapshot,
	now time.Time,
) *domain.ChangeRecord {
	record := &domain.ChangeRecord{
		Timestamp:    now,
		EntityID:     entity.ID,
		EntityType:   descriptor.Type,
		Kind:         entity.Kind,
		CampaignName: entity.CampaignName,
		AdGroupName:  entity.AdGroupName,
	}

	if account != nil {
		record.AccountName = account.Name
		record.AccountID = account.ID
	}

	if !descriptor.HasSecondaryStatus {
		record.PreviousSecondaryStatus = domain.NotApplicable
		record.NewSecondaryStatus = domain.NotApplicable
	}

	return record
}
