package reporting

import (
	"time"

	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

// ResolvePeriod completa os limites ausentes com o mês do instante de referência.
// O fim sempre vai até 23:59:59.999 do dia. Intervalo invertido não é erro, apenas
// não encontra procedimentos.
func ResolvePeriod(filters domain.ReportFilters, reference time.Time) domain.Period {
	start := utils.FirstDayOfMonth(reference)
	if filters.StartDate != nil {
		start = *filters.StartDate
	}

	end := utils.LastDayOfMonth(reference)
	if filters.EndDate != nil {
		end = *filters.EndDate
	}

	return domain.Period{
		Start: start,
		End:   utils.EndOfDay(end),
	}
}

// RequirePeriod exige os dois limites, sem o padrão mensal
func RequirePeriod(filters domain.ReportFilters) (domain.Period, error) {
	if filters.StartDate == nil || filters.EndDate == nil {
		return domain.Period{}, NewReportError(ErrMissingPeriod, apiErrors.ErrMissingRequiredData, "Data inicial e data final são obrigatórias")
	}

	return domain.Period{
		Start: *filters.StartDate,
		End:   utils.EndOfDay(*filters.EndDate),
	}, nil
}
