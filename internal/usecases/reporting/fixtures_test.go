package reporting

import (
	"time"

	"github.com/vfg2006/production-report-api/internal/domain"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 12, 0, 0, 0, time.UTC)
}

// januaryRecords: paciente A particular em 05/01 e 10/01, paciente B UNIMED em 20/01
func januaryRecords() []domain.ProcedureRecord {
	return []domain.ProcedureRecord{
		{ID: "PRC1", OwnerID: 7, PatientID: "A", PatientName: "Ana Souza", PlanType: domain.PlanTypeParticular, PerformedAt: day(time.January, 5), PlanValue: 100, EvolutionText: "Melhora da amplitude"},
		{ID: "PRC2", OwnerID: 7, PatientID: "A", PatientName: "Ana Souza", PlanType: domain.PlanTypeParticular, PerformedAt: day(time.January, 10), PlanValue: 100},
		{ID: "PRC3", OwnerID: 7, PatientID: "B", PatientName: "Bruno Lima", PlanType: domain.PlanTypeUNIMED, PerformedAt: day(time.January, 20), PlanValue: 50, EvolutionText: "Sem dor"},
	}
}

func januaryPeriod() domain.Period {
	return domain.Period{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC),
	}
}
