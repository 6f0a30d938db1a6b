package domain

import "time"

// ReportView identifica o recorte do relatório de produção
type ReportView string

const (
	ReportViewFull      ReportView = "completo"
	ReportViewPrivate   ReportView = "particular"
	ReportViewInsurance ReportView = "plano-saude"
)

// ParseReportView aceita vazio como relatório completo
func ParseReportView(value string) (ReportView, bool) {
	switch ReportView(value) {
	case "", ReportViewFull:
		return ReportViewFull, true
	case ReportViewPrivate:
		return ReportViewPrivate, true
	case ReportViewInsurance:
		return ReportViewInsurance, true
	default:
		return "", false
	}
}

// ReportFilters são os limites opcionais recebidos na requisição
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Period é o intervalo fechado já resolvido
type Period struct {
	Start time.Time `json:"periodoInicio"`
	End   time.Time `json:"periodoFim"`
}

type ReportTotals struct {
	ProcedureCount         int     `json:"totalProcedimentos"`
	Production             float64 `json:"producao"`
	ProductionPrivate      float64 `json:"producaoParticular"`
	ProductionInsurance    float64 `json:"producaoPlanoSaude"`
	CountPrivate           int     `json:"totalParticular"`
	CountInsuranceWeighted int     `json:"totalPlanoSaude"`
	EvolutionsTotal        int     `json:"evolucoesGeradas"`
	EvolutionsPrivate      int     `json:"evolucoesGeradasParticular"`
	EvolutionsInsurance    int     `json:"evolucoesGeradasPlanoSaude"`
	DistinctPatientCount   int     `json:"pacientesAtendidos"`
}

// PatientDetail é a linha por paciente do relatório.
// Em pacientes de plano, ProcedureCount já tem o multiplicador aplicado.
type PatientDetail struct {
	PatientID          string    `json:"pacienteId"`
	PatientName        string    `json:"pacienteNome"`
	PlanType           PlanType  `json:"planoSaude"`
	FirstProcedureDate time.Time `json:"primeiroProcedimento"`
	LastProcedureDate  time.Time `json:"ultimoProcedimento"`
	ProcedureCount     int       `json:"totalProcedimentos"`
	PerformedCount     int       `json:"procedimentosRealizados"`
	EvolutionCount     int       `json:"totalEvolucoes"`
}

// ReportData é o resultado final entregue às saídas (JSON, email, PDF, planilha)
type ReportData struct {
	View ReportView `json:"visao"`
	Period
	ReportTotals
	Detail []PatientDetail `json:"procedimentosDetalhados"`
}

// ReportViews reúne os três recortes calculados sobre a mesma busca
type ReportViews struct {
	Full      *ReportData `json:"completo"`
	Private   *ReportData `json:"particular"`
	Insurance *ReportData `json:"planoSaude"`
}

func (v ReportViews) ByView(view ReportView) *ReportData {
	switch view {
	case ReportViewPrivate:
		return v.Private
	case ReportViewInsurance:
		return v.Insurance
	default:
		return v.Full
	}
}

// ReportOwner é o profissional dono dos procedimentos
type ReportOwner struct {
	ID   int
	Name string
}

// ReportMessage é o envio de um relatório por email
type ReportMessage struct {
	To       string
	Owner    ReportOwner
	Protocol string
	Report   *ReportData
}

// DispatchReceipt é a resposta de um envio concluído
type DispatchReceipt struct {
	Email    string     `json:"email"`
	Protocol string     `json:"protocolo"`
	View     ReportView `json:"visao"`
}

type DocumentFormat string

const (
	DocumentFormatPDF  DocumentFormat = "pdf"
	DocumentFormatXLSX DocumentFormat = "xlsx"
)

// ParseDocumentFormat aceita vazio como PDF
func ParseDocumentFormat(value string) (DocumentFormat, bool) {
	switch DocumentFormat(value) {
	case "", DocumentFormatPDF:
		return DocumentFormatPDF, true
	case DocumentFormatXLSX:
		return DocumentFormatXLSX, true
	default:
		return "", false
	}
}

type ReportDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}
