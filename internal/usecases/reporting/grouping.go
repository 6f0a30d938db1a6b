package reporting

import (
	"slices"
	"sort"

	"github.com/vfg2006/production-report-api/internal/domain"
)

// PatientGroups associa cada paciente ao seu resumo, na ordem em que o paciente
// aparece nos procedimentos. Depois de montado não é mais alterado; os acessos
// devolvem cópias.
type PatientGroups struct {
	order     []string
	summaries map[string]domain.PatientSummary
}

// GroupByPatient dobra os procedimentos em resumos por paciente. Procedimentos e
// evoluções ficam em ordem crescente de data.
func GroupByPatient(records []domain.ProcedureRecord) PatientGroups {
	groups := PatientGroups{
		order:     make([]string, 0),
		summaries: make(map[string]domain.PatientSummary),
	}

	for _, record := range records {
		groups = groups.fold(record)
	}

	for _, id := range groups.order {
		summary := groups.summaries[id]
		sort.SliceStable(summary.Procedures, func(i, j int) bool {
			return summary.Procedures[i].PerformedAt.Before(summary.Procedures[j].PerformedAt)
		})
		sort.SliceStable(summary.Evolutions, func(i, j int) bool {
			return summary.Evolutions[i].PerformedAt.Before(summary.Evolutions[j].PerformedAt)
		})
		groups.summaries[id] = summary
	}

	return groups
}

// fold só é usado durante a montagem, antes de qualquer resumo ser exposto
func (g PatientGroups) fold(record domain.ProcedureRecord) PatientGroups {
	summary, exists := g.summaries[record.PatientID]
	if !exists {
		g.order = append(g.order, record.PatientID)
		summary = domain.PatientSummary{
			PatientID:   record.PatientID,
			PatientName: record.PatientName,
			PlanType:    record.PlanType,
		}
	}

	summary.Procedures = append(summary.Procedures, domain.ProcedureEntry{
		PerformedAt: record.PerformedAt,
		PlanValue:   record.PlanValue,
	})

	if record.HasEvolution() {
		summary.Evolutions = append(summary.Evolutions, domain.EvolutionEntry{
			PerformedAt: record.PerformedAt,
			Text:        record.EvolutionText,
		})
	}

	g.summaries[record.PatientID] = summary
	return g
}

func (g PatientGroups) Len() int {
	return len(g.order)
}

// Get devolve uma cópia do resumo do paciente
func (g PatientGroups) Get(patientID string) (domain.PatientSummary, bool) {
	summary, exists := g.summaries[patientID]
	if !exists {
		return domain.PatientSummary{}, false
	}
	return cloneSummary(summary), true
}

// Summaries devolve cópias dos resumos na ordem de primeira aparição
func (g PatientGroups) Summaries() []domain.PatientSummary {
	summaries := make([]domain.PatientSummary, 0, len(g.order))
	for _, id := range g.order {
		summaries = append(summaries, cloneSummary(g.summaries[id]))
	}
	return summaries
}

func cloneSummary(summary domain.PatientSummary) domain.PatientSummary {
	summary.Procedures = slices.Clone(summary.Procedures)
	summary.Evolutions = slices.Clone(summary.Evolutions)
	return summary
}
