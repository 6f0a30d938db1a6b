package pdf

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

const (
	pageWidth   = 210.0
	marginSide  = 15.0
	contentWide = pageWidth - 2*marginSide
	lineHeight  = 7.0
)

var (
	primaryColor = [3]int{13, 110, 253}
	headerFill   = [3]int{233, 240, 252}
	borderColor  = [3]int{221, 221, 221}
)

type Renderer struct {
	appName string
	now     func() time.Time
}

func NewRenderer(appName string) *Renderer {
	return &Renderer{
		appName: appName,
		now:     time.Now,
	}
}

func (r *Renderer) Format() domain.DocumentFormat {
	return domain.DocumentFormatPDF
}

func (r *Renderer) ContentType() string {
	return "application/pdf"
}

// Render gera o relatório em A4: cabeçalho, cartões de resumo, divisão por
// pagador e a tabela de pacientes
func (r *Renderer) Render(ctx context.Context, owner domain.ReportOwner, report *domain.ReportData) ([]byte, error) {
	if report == nil {
		return nil, errors.New("pdf: relatório vazio")
	}

	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetTitle(tr(title(report.View)), false)
	doc.SetAuthor(r.appName, false)
	doc.SetCreationDate(r.now())
	doc.SetMargins(marginSide, 15, marginSide)
	doc.SetAutoPageBreak(true, 20)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, tr(fmt.Sprintf("Gerado por %s em %s - página %d/{nb}", r.appName, utils.FormatDateBR(r.now()), doc.PageNo())), "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	r.header(doc, tr, owner, report)
	summaryCards(doc, tr, report)
	payerBreakdown(doc, tr, report)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	patientTable(doc, tr, report)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "pdf: erro ao gerar documento")
	}

	return buf.Bytes(), nil
}

func title(view domain.ReportView) string {
	switch view {
	case domain.ReportViewPrivate:
		return "Relatório de Produção Particular"
	case domain.ReportViewInsurance:
		return "Relatório de Produção Planos de Saúde"
	default:
		return "Relatório de Produção"
	}
}

func (r *Renderer) header(doc *fpdf.Fpdf, tr func(string) string, owner domain.ReportOwner, report *domain.ReportData) {
	doc.SetFont("Helvetica", "B", 16)
	doc.SetTextColor(primaryColor[0], primaryColor[1], primaryColor[2])
	doc.CellFormat(0, 10, tr(fmt.Sprintf("%s - %s", title(report.View), r.appName)), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(60, 60, 60)
	if owner.Name != "" {
		doc.CellFormat(0, lineHeight, tr("Profissional: "+owner.Name), "", 1, "C", false, 0, "")
	}
	doc.CellFormat(0, lineHeight, tr(fmt.Sprintf("Período: %s até %s", utils.FormatDateBR(report.Start), utils.FormatDateBR(report.End))), "", 1, "C", false, 0, "")
	doc.Ln(4)
}

type card struct {
	label string
	value string
}

func summaryCards(doc *fpdf.Fpdf, tr func(string) string, report *domain.ReportData) {
	cards := []card{
		{"Produção", utils.FormatCurrencyBRL(report.Production)},
		{"Procedimentos", fmt.Sprintf("%d", report.ProcedureCount)},
		{"Evoluções", fmt.Sprintf("%d", report.EvolutionsTotal)},
		{"Pacientes atendidos", fmt.Sprintf("%d", report.DistinctPatientCount)},
	}

	width := contentWide / float64(len(cards))
	doc.SetDrawColor(borderColor[0], borderColor[1], borderColor[2])
	doc.SetFillColor(headerFill[0], headerFill[1], headerFill[2])

	x, y := doc.GetXY()
	for i, c := range cards {
		doc.SetXY(x+float64(i)*width, y)
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(90, 90, 90)
		doc.CellFormat(width-2, 6, tr(c.label), "LTR", 2, "C", true, 0, "")
		doc.SetFont("Helvetica", "B", 12)
		doc.SetTextColor(primaryColor[0], primaryColor[1], primaryColor[2])
		doc.CellFormat(width-2, 9, tr(c.value), "LBR", 0, "C", true, 0, "")
	}
	doc.SetXY(x, y+18)
}

func payerBreakdown(doc *fpdf.Fpdf, tr func(string) string, report *domain.ReportData) {
	sectionTitle(doc, tr, "Resumo por pagador")

	rows := [][]string{}
	if report.View != domain.ReportViewInsurance {
		rows = append(rows,
			[]string{"Procedimentos particulares", fmt.Sprintf("%d", report.CountPrivate)},
			[]string{"Produção particulares", utils.FormatCurrencyBRL(report.ProductionPrivate)},
			[]string{"Evoluções particulares", fmt.Sprintf("%d", report.EvolutionsPrivate)},
		)
	}
	if report.View != domain.ReportViewPrivate {
		rows = append(rows,
			[]string{"Procedimentos planos de saúde", fmt.Sprintf("%d", report.CountInsuranceWeighted)},
			[]string{"Produção planos de saúde", utils.FormatCurrencyBRL(report.ProductionInsurance)},
			[]string{"Evoluções planos de saúde", fmt.Sprintf("%d", report.EvolutionsInsurance)},
		)
	}

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(40, 40, 40)
	for _, row := range rows {
		doc.CellFormat(contentWide*0.7, lineHeight, tr(row[0]), "B", 0, "L", false, 0, "")
		doc.CellFormat(contentWide*0.3, lineHeight, tr(row[1]), "B", 1, "R", false, 0, "")
	}
	doc.Ln(4)
}

var patientColumns = []struct {
	label string
	width float64
	align string
}{
	{"Paciente", 58, "L"},
	{"Plano", 24, "L"},
	{"Primeiro", 24, "C"},
	{"Último", 24, "C"},
	{"Proced.", 15, "R"},
	{"Realiz.", 15, "R"},
	{"Evol.", 20, "R"},
}

func patientTable(doc *fpdf.Fpdf, tr func(string) string, report *domain.ReportData) {
	sectionTitle(doc, tr, "Pacientes")

	if len(report.Detail) == 0 {
		doc.SetFont("Helvetica", "I", 10)
		doc.CellFormat(0, lineHeight, tr("Nenhum procedimento no período."), "", 1, "L", false, 0, "")
		return
	}

	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(headerFill[0], headerFill[1], headerFill[2])
	doc.SetTextColor(40, 40, 40)
	for _, col := range patientColumns {
		doc.CellFormat(col.width, lineHeight, tr(col.label), "1", 0, col.align, true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 9)
	for _, row := range report.Detail {
		values := []string{
			row.PatientName,
			string(row.PlanType),
			utils.FormatDateBR(row.FirstProcedureDate),
			utils.FormatDateBR(row.LastProcedureDate),
			fmt.Sprintf("%d", row.ProcedureCount),
			fmt.Sprintf("%d", row.PerformedCount),
			fmt.Sprintf("%d", row.EvolutionCount),
		}
		for i, col := range patientColumns {
			doc.CellFormat(col.width, lineHeight, tr(values[i]), "1", 0, col.align, false, 0, "")
		}
		doc.Ln(-1)
	}
}

func sectionTitle(doc *fpdf.Fpdf, tr func(string) string, text string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(primaryColor[0], primaryColor[1], primaryColor[2])
	doc.CellFormat(0, 9, tr(text), "", 1, "L", false, 0, "")
}
