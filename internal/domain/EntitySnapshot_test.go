package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	t.Run("Preserva a ordem de inserção", func(t *testing.T) {
		snapshot := NewSnapshot()
		snapshot.Add(&EntitySnapshot{ID: "b", Status: StatusEnabled})
		snapshot.Add(&EntitySnapshot{ID: "a", Status: StatusEnabled})
		snapshot.Add(&EntitySnapshot{ID: "c", Status: StatusEnabled})

		ids := make([]string, 0, snapshot.Len())
		for _, record := range snapshot.Records() {
			ids = append(ids, record.ID)
		}

		assert.Equal(t, []string{"b", "a", "c"}, ids)
	})

	t.Run("Id repetido mantém a posição e passa a apontar para o registro mais novo", func(t *testing.T) {
		snapshot := NewSnapshot()
		snapshot.Add(&EntitySnapshot{ID: "a", Status: StatusEnabled})
		snapshot.Add(&EntitySnapshot{ID: "b", Status: StatusEnabled})
		snapshot.Add(&EntitySnapshot{ID: "a", Status: StatusPaused})

		assert.Equal(t, 2, snapshot.Len())
		assert.Equal(t, "a", snapshot.Records()[0].ID)
		assert.Equal(t, StatusPaused, snapshot.Records()[0].Status)

		record, ok := snapshot.Get("a")
		assert.True(t, ok)
		assert.Equal(t, StatusPaused, record.Status)
	})

	t.Run("Registro sem id é descartado", func(t *testing.T) {
		snapshot := NewSnapshot()
		snapshot.Add(nil)
		snapshot.Add(&EntitySnapshot{Status: StatusEnabled})

		assert.Equal(t, 0, snapshot.Len())
		assert.True(t, snapshot.IsEmpty())
	})

	t.Run("IsEmpty é seguro para snapshot nil", func(t *testing.T) {
		var snapshot *Snapshot
		assert.True(t, snapshot.IsEmpty())
	})
}

func TestDescriptorFor(t *testing.T) {
	tests := []struct {
		name       string
		entityType EntityType
		found      bool
	}{
		{name: "Anúncio", entityType: EntityTypeAd, found: true},
		{name: "Grupo de anúncios", entityType: EntityTypeAdGroup, found: true},
		{name: "Palavra-chave", entityType: EntityTypeKeyword, found: true},
		{name: "Tipo desconhecido", entityType: EntityType("CAMPAIGN"), found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptor, ok := DescriptorFor(tt.entityType)

			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.entityType, descriptor.Type)
			}
		})
	}
}
