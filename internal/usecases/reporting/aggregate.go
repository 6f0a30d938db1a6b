package reporting

import "github.com/vfg2006/production-report-api/internal/domain"

// Classify separa particular de plano de saúde. Qualquer plano diferente de
// "Particular", inclusive desconhecido, é plano de saúde.
func Classify(record domain.ProcedureRecord) domain.PayerCategory {
	if record.PlanType.IsPrivate() {
		return domain.PayerPrivate
	}
	return domain.PayerInsurancePlan
}

type bucket struct {
	count      int
	sum        float64
	evolutions int
}

func (b bucket) add(record domain.ProcedureRecord) bucket {
	b.count++
	b.sum += record.PlanValue
	if record.HasEvolution() {
		b.evolutions++
	}
	return b
}

// Aggregate soma contagens, valores e evoluções por categoria em uma única passada.
// O multiplicador de plano é aplicado uma vez, no final.
func Aggregate(records []domain.ProcedureRecord) domain.ReportTotals {
	var private, insurance bucket
	patients := make(map[string]struct{}, len(records))

	for _, record := range records {
		patients[record.PatientID] = struct{}{}

		switch Classify(record) {
		case domain.PayerPrivate:
			private = private.add(record)
		default:
			insurance = insurance.add(record)
		}
	}

	totals := domain.ReportTotals{
		ProcedureCount:         private.count + insurance.count,
		ProductionPrivate:      private.sum,
		ProductionInsurance:    insurance.sum * domain.InsuranceMultiplier,
		CountPrivate:           private.count,
		CountInsuranceWeighted: insurance.count * domain.InsuranceMultiplier,
		EvolutionsPrivate:      private.evolutions,
		EvolutionsInsurance:    insurance.evolutions,
		DistinctPatientCount:   len(patients),
	}
	totals.Production = totals.ProductionPrivate + totals.ProductionInsurance
	totals.EvolutionsTotal = totals.EvolutionsPrivate + totals.EvolutionsInsurance

	return totals
}

func filterByCategory(records []domain.ProcedureRecord, category domain.PayerCategory) []domain.ProcedureRecord {
	filtered := make([]domain.ProcedureRecord, 0, len(records))
	for _, record := range records {
		if Classify(record) == category {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
