package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/production-report-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		planType domain.PlanType
		expected domain.PayerCategory
	}{
		{domain.PlanTypeParticular, domain.PayerPrivate},
		{domain.PlanTypeSUS, domain.PayerInsurancePlan},
		{domain.PlanTypeAPAS, domain.PayerInsurancePlan},
		{domain.PlanTypeUNIMED, domain.PayerInsurancePlan},
		{domain.PlanTypeOutros, domain.PayerInsurancePlan},
		{"Bradesco Saúde", domain.PayerInsurancePlan},
		{"particular", domain.PayerInsurancePlan},
	}

	for _, tt := range tests {
		t.Run(string(tt.planType), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(domain.ProcedureRecord{PlanType: tt.planType}))
		})
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.ProcedureRecord
		expected domain.ReportTotals
	}{
		{
			name:     "Sem procedimentos retorna tudo zerado",
			records:  nil,
			expected: domain.ReportTotals{},
		},
		{
			name:    "Janeiro com particular e plano de saúde",
			records: januaryRecords(),
			expected: domain.ReportTotals{
				ProcedureCount:         3,
				Production:             450,
				ProductionPrivate:      200,
				ProductionInsurance:    250,
				CountPrivate:           2,
				CountInsuranceWeighted: 5,
				EvolutionsTotal:        2,
				EvolutionsPrivate:      1,
				EvolutionsInsurance:    1,
				DistinctPatientCount:   2,
			},
		},
		{
			name: "Evolução só com espaços não conta e plano desconhecido é plano de saúde",
			records: []domain.ProcedureRecord{
				{PatientID: "C", PatientName: "Carlos", PlanType: "Bradesco", PerformedAt: day(time.January, 3), PlanValue: 30, EvolutionText: "   \n\t"},
				{PatientID: "C", PatientName: "Carlos", PlanType: "Bradesco", PerformedAt: day(time.January, 4), EvolutionText: "ok"},
			},
			expected: domain.ReportTotals{
				ProcedureCount:         2,
				Production:             150,
				ProductionInsurance:    150,
				CountInsuranceWeighted: 10,
				EvolutionsTotal:        1,
				EvolutionsInsurance:    1,
				DistinctPatientCount:   1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Aggregate(tt.records))
		})
	}
}

func TestAggregate_Invariants(t *testing.T) {
	records := append(januaryRecords(),
		domain.ProcedureRecord{PatientID: "D", PatientName: "Daniela", PlanType: domain.PlanTypeSUS, PerformedAt: day(time.January, 22), PlanValue: 12.35},
		domain.ProcedureRecord{PatientID: "E", PatientName: "Eduardo", PlanType: domain.PlanTypeParticular, PerformedAt: day(time.January, 23), PlanValue: 80.1},
	)

	totals := Aggregate(records)

	assert.Equal(t, totals.ProcedureCount, totals.CountPrivate+totals.CountInsuranceWeighted/domain.InsuranceMultiplier)
	assert.Equal(t, totals.ProductionPrivate+totals.ProductionInsurance, totals.Production)
	assert.Equal(t, 4, totals.DistinctPatientCount)
}
