package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// BuildView monta um recorte do relatório a partir dos procedimentos já buscados
func BuildView(view domain.ReportView, period domain.Period, records []domain.ProcedureRecord) (*domain.ReportData, error) {
	if _, ok := domain.ParseReportView(string(view)); !ok {
		return nil, NewReportError(ErrInvalidView, apiErrors.ErrInvalidReportView, fmt.Sprintf("Recorte desconhecido: %s", view))
	}

	if err := ValidateRecords(records); err != nil {
		return nil, err
	}

	return newViewBuilder(period, records).build(view), nil
}

// BuildViews monta os três recortes sobre a mesma busca, agrupando uma única vez
func BuildViews(period domain.Period, records []domain.ProcedureRecord) (*domain.ReportViews, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}

	builder := newViewBuilder(period, records)

	return &domain.ReportViews{
		Full:      builder.build(domain.ReportViewFull),
		Private:   builder.build(domain.ReportViewPrivate),
		Insurance: builder.build(domain.ReportViewInsurance),
	}, nil
}

// ValidateRecords verifica os campos que a consulta garante em todo procedimento
func ValidateRecords(records []domain.ProcedureRecord) error {
	for _, record := range records {
		if strings.TrimSpace(record.PatientID) == "" || strings.TrimSpace(record.PatientName) == "" {
			return NewReportError(ErrFetchContractViolation, apiErrors.ErrInternalServer, fmt.Sprintf("procedimento %s sem paciente", record.ID))
		}
		if record.PerformedAt.IsZero() {
			return NewReportError(ErrFetchContractViolation, apiErrors.ErrInternalServer, fmt.Sprintf("procedimento %s sem data de realização", record.ID))
		}
	}
	return nil
}

type viewBuilder struct {
	period           domain.Period
	records          []domain.ProcedureRecord
	groups           PatientGroups
	distinctPatients int
}

func newViewBuilder(period domain.Period, records []domain.ProcedureRecord) viewBuilder {
	groups := GroupByPatient(records)

	return viewBuilder{
		period:           period,
		records:          records,
		groups:           groups,
		distinctPatients: groups.Len(),
	}
}

func (b viewBuilder) build(view domain.ReportView) *domain.ReportData {
	var totals domain.ReportTotals
	switch view {
	case domain.ReportViewPrivate:
		totals = Aggregate(filterByCategory(b.records, domain.PayerPrivate))
	case domain.ReportViewInsurance:
		totals = Aggregate(filterByCategory(b.records, domain.PayerInsurancePlan))
	default:
		totals = Aggregate(b.records)
	}

	// Pacientes atendidos é sempre o total do período, em qualquer recorte
	totals.DistinctPatientCount = b.distinctPatients

	detail := make([]domain.PatientDetail, 0, b.groups.Len())
	for _, summary := range b.groups.Summaries() {
		if !includeInView(view, summary.PlanType) {
			continue
		}
		detail = append(detail, detailRow(summary))
	}
	sortDetail(detail)

	return &domain.ReportData{
		View:         view,
		Period:       b.period,
		ReportTotals: totals,
		Detail:       detail,
	}
}

func includeInView(view domain.ReportView, planType domain.PlanType) bool {
	switch view {
	case domain.ReportViewPrivate:
		return planType.IsPrivate()
	case domain.ReportViewInsurance:
		return !planType.IsPrivate()
	default:
		return true
	}
}

// detailRow aplica o multiplicador nas linhas de plano, como nos totais
func detailRow(summary domain.PatientSummary) domain.PatientDetail {
	performed := summary.ProcedureCount()
	procedureCount := performed
	if !summary.PlanType.IsPrivate() {
		procedureCount = performed * domain.InsuranceMultiplier
	}

	return domain.PatientDetail{
		PatientID:          summary.PatientID,
		PatientName:        summary.PatientName,
		PlanType:           summary.PlanType,
		FirstProcedureDate: summary.FirstProcedureDate(),
		LastProcedureDate:  summary.LastProcedureDate(),
		ProcedureCount:     procedureCount,
		PerformedCount:     performed,
		EvolutionCount:     summary.EvolutionCount(),
	}
}

// sortDetail ordena por nome em pt-BR e desempata pelo ID do paciente
func sortDetail(detail []domain.PatientDetail) {
	collator := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

	sort.SliceStable(detail, func(i, j int) bool {
		if c := collator.CompareString(detail[i].PatientName, detail[j].PatientName); c != 0 {
			return c < 0
		}
		return detail[i].PatientID < detail[j].PatientID
	})
}
