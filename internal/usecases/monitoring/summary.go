package monitoring

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ads-status-monitor/internal/domain"
)

// CategoryCount é a contagem de uma categoria do resumo, na ordem de
// prioridade do descritor. A categoria residual "other" vem sempre por último.
type CategoryCount struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// Summary agrega os registros de uma execução por categoria. A soma das
// contagens é sempre o total de registros: cada registro cai na primeira
// regra que casar com seu changeType, ou na categoria residual.
type Summary struct {
	EntityType domain.EntityType `json:"entity_type"`
	Categories []CategoryCount   `json:"categories"`
	Total      int               `json:"total"`
}

const otherCategory = "other"

// Summarize classifica cada registro pelo changeType contra as regras do
// descritor, em ordem de prioridade, primeira regra vencedora.
func Summarize(descriptor *domain.EntityDescriptor, records []*domain.ChangeRecord) *Summary {
	counts := make(map[string]int)

	for _, record := range records {
		counts[categoryFor(descriptor, record.ChangeType)]++
	}

	summary := &Summary{
		EntityType: descriptor.Type,
		Total:      len(records),
	}

	seen := make(map[string]bool)
	for _, rule := range descriptor.SummaryRules {
		if seen[rule.Category] {
			continue
		}
		seen[rule.Category] = true
		summary.Categories = append(summary.Categories, CategoryCount{
			Category: rule.Category,
			Label:    rule.Label,
			Count:    counts[rule.Category],
		})
	}

	summary.Categories = append(summary.Categories, CategoryCount{
		Category: otherCategory,
		Label:    descriptor.OtherLabel,
		Count:    counts[otherCategory],
	})

	return summary
}

func categoryFor(descriptor *domain.EntityDescriptor, changeType string) string {
	for _, rule := range descriptor.SummaryRules {
		if rule.Matches(changeType) {
			return rule.Category
		}
	}
	return otherCategory
}

// FormatAlertMessage monta a mensagem enviada ao webhook: cabeçalho com a
// conta, uma linha por categoria com contagem diferente de zero (sem deixar
// linha em branco no lugar das omitidas), total e link para o log.
func FormatAlertMessage(
	account *domain.AdAccount,
	descriptor *domain.EntityDescriptor,
	summary *Summary,
	logURL string,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📊 Monitoramento de %s — %s (%s)\n", descriptor.AlertTitle, account.Name, account.ID)

	for _, category := range summary.Categories {
		if category.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "• %s: %d\n", category.Label, category.Count)
	}

	fmt.Fprintf(&b, "Total de alterações: %d", summary.Total)

	if logURL != "" {
		fmt.Fprintf(&b, "\nLog completo: %s", logURL)
	}

	return b.String()
}
