package domain

import (
	"time"
)

type EntityType string

const (
	EntityTypeAd      EntityType = "AD"
	EntityTypeAdGroup EntityType = "AD_GROUP"
	EntityTypeKeyword EntityType = "KEYWORD"
)

// EntitySnapshot é o último estado observado de uma entidade monitorada
// (anúncio, grupo de anúncios ou palavra-chave).
type EntitySnapshot struct {
	ID              string       `json:"id"`
	CampaignName    string       `json:"campaign_name"`
	AdGroupName     string       `json:"ad_group_name"`
	Kind            string       `json:"kind"` // tipo do anúncio ou tipo de correspondência da palavra-chave
	Status          EntityStatus `json:"status"`
	SecondaryStatus EntityStatus `json:"secondary_status"`
	ObservedAt      time.Time    `json:"observed_at"`
}

// Snapshot é o mapeamento id -> EntitySnapshot de uma execução, preservando
// a ordem em que os registros foram obtidos. A ordem importa: o detector de
// mudanças percorre o snapshot atual na ordem da busca e o anterior na ordem
// de persistência.
type Snapshot struct {
	records []*EntitySnapshot
	byID    map[string]*EntitySnapshot
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		byID: make(map[string]*EntitySnapshot),
	}
}

// Add insere ou substitui o registro da entidade. Um id repetido mantém a
// posição original na ordem e passa a apontar para o registro mais recente.
func (s *Snapshot) Add(record *EntitySnapshot) {
	if record == nil || record.ID == "" {
		return
	}

	if _, exists := s.byID[record.ID]; !exists {
		s.records = append(s.records, record)
	} else {
		for i, existing := range s.records {
			if existing.ID == record.ID {
				s.records[i] = record
				break
			}
		}
	}

	s.byID[record.ID] = record
}

func (s *Snapshot) Get(id string) (*EntitySnapshot, bool) {
	record, ok := s.byID[id]
	return record, ok
}

func (s *Snapshot) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Records retorna os registros na ordem de inserção.
func (s *Snapshot) Records() []*EntitySnapshot {
	return s.records
}

func (s *Snapshot) Len() int {
	return len(s.records)
}

// IsEmpty distingue a primeira execução (nenhum snapshot persistido) das
// execuções subsequentes.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || len(s.records) == 0
}
