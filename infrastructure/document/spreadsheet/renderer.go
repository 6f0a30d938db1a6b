package spreadsheet

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet  = "Resumo"
	PatientsSheet = "Pacientes"
)

var (
	currencyFormat = `"R$" #,##0.00`
	dateFormat     = "dd/mm/yyyy"
)

var patientHeader = []any{
	"Paciente", "ID", "Plano", "Primeiro procedimento", "Último procedimento",
	"Procedimentos", "Procedimentos realizados", "Evoluções",
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Format() domain.DocumentFormat {
	return domain.DocumentFormatXLSX
}

func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

type styles struct {
	header   int
	currency int
	date     int
}

// Render gera a planilha com a aba de resumo e a aba de pacientes
func (r *Renderer) Render(ctx context.Context, owner domain.ReportOwner, report *domain.ReportData) ([]byte, error) {
	if report == nil {
		return nil, errors.New("spreadsheet: relatório vazio")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.ForContext(ctx).WithError(err).Warn("spreadsheet: erro ao fechar planilha")
		}
	}()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, errors.Wrap(err, "spreadsheet: erro ao renomear aba")
	}
	if err := writeSummary(f, st, owner, report); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(PatientsSheet); err != nil {
		return nil, errors.Wrap(err, "spreadsheet: erro ao criar aba de pacientes")
	}
	if err := writePatients(f, st, report.Detail); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "spreadsheet: erro ao gerar arquivo")
	}

	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"0D6EFD"}},
	})
	if err != nil {
		return styles{}, errors.Wrap(err, "spreadsheet: erro ao criar estilo")
	}

	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return styles{}, errors.Wrap(err, "spreadsheet: erro ao criar estilo")
	}

	date, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFormat})
	if err != nil {
		return styles{}, errors.Wrap(err, "spreadsheet: erro ao criar estilo")
	}

	return styles{header: header, currency: currency, date: date}, nil
}

type summaryRow struct {
	label    string
	value    any
	currency bool
}

func summaryRows(owner domain.ReportOwner, report *domain.ReportData) []summaryRow {
	rows := []summaryRow{
		{label: "Profissional", value: owner.Name},
		{label: "Recorte", value: string(report.View)},
		{label: "Início do período", value: report.Start.Format("02/01/2006")},
		{label: "Fim do período", value: report.End.Format("02/01/2006")},
		{label: "Total de procedimentos", value: report.ProcedureCount},
		{label: "Produção", value: utils.RoundCents(report.Production), currency: true},
	}

	if report.View != domain.ReportViewInsurance {
		rows = append(rows,
			summaryRow{label: "Procedimentos particulares", value: report.CountPrivate},
			summaryRow{label: "Produção particulares", value: utils.RoundCents(report.ProductionPrivate), currency: true},
			summaryRow{label: "Evoluções particulares", value: report.EvolutionsPrivate},
		)
	}
	if report.View != domain.ReportViewPrivate {
		rows = append(rows,
			summaryRow{label: "Procedimentos planos de saúde", value: report.CountInsuranceWeighted},
			summaryRow{label: "Produção planos de saúde", value: utils.RoundCents(report.ProductionInsurance), currency: true},
			summaryRow{label: "Evoluções planos de saúde", value: report.EvolutionsInsurance},
		)
	}

	return append(rows,
		summaryRow{label: "Evoluções geradas", value: report.EvolutionsTotal},
		summaryRow{label: "Pacientes atendidos", value: report.DistinctPatientCount},
	)
}

func writeSummary(f *excelize.File, st styles, owner domain.ReportOwner, report *domain.ReportData) error {
	if err := f.SetSheetRow(SummarySheet, "A1", &[]any{"Indicador", "Valor"}); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao escrever resumo")
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", st.header); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao escrever resumo")
	}

	for i, row := range summaryRows(owner, report) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "spreadsheet: erro ao escrever resumo")
		}
		if err := f.SetSheetRow(SummarySheet, cell, &[]any{row.label, row.value}); err != nil {
			return errors.Wrap(err, "spreadsheet: erro ao escrever resumo")
		}
		if row.currency {
			valueCell, _ := excelize.CoordinatesToCellName(2, i+2)
			if err := f.SetCellStyle(SummarySheet, valueCell, valueCell, st.currency); err != nil {
				return errors.Wrap(err, "spreadsheet: erro ao escrever resumo")
			}
		}
	}

	return errors.Wrap(f.SetColWidth(SummarySheet, "A", "B", 32), "spreadsheet: erro ao escrever resumo")
}

func writePatients(f *excelize.File, st styles, detail []domain.PatientDetail) error {
	if err := f.SetSheetRow(PatientsSheet, "A1", &patientHeader); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao escrever pacientes")
	}
	if err := f.SetCellStyle(PatientsSheet, "A1", "H1", st.header); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao escrever pacientes")
	}

	for i, row := range detail {
		line := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, line)

		values := []any{
			row.PatientName,
			row.PatientID,
			string(row.PlanType),
			cellDate(row.FirstProcedureDate),
			cellDate(row.LastProcedureDate),
			row.ProcedureCount,
			row.PerformedCount,
			row.EvolutionCount,
		}
		if err := f.SetSheetRow(PatientsSheet, cell, &values); err != nil {
			return errors.Wrap(err, "spreadsheet: erro ao escrever pacientes")
		}

		first, _ := excelize.CoordinatesToCellName(4, line)
		last, _ := excelize.CoordinatesToCellName(5, line)
		if err := f.SetCellStyle(PatientsSheet, first, last, st.date); err != nil {
			return errors.Wrap(err, "spreadsheet: erro ao escrever pacientes")
		}
	}

	if err := f.SetColWidth(PatientsSheet, "A", "A", 36); err != nil {
		return errors.Wrap(err, "spreadsheet: erro ao escrever pacientes")
	}
	return errors.Wrap(f.SetColWidth(PatientsSheet, "B", "H", 18), "spreadsheet: erro ao escrever pacientes")
}

func cellDate(date time.Time) any {
	if date.IsZero() {
		return ""
	}
	return date
}
