package domain

import (
	"strings"
	"time"
)

// PlanType é o plano de saúde cadastrado no paciente
type PlanType string

const (
	PlanTypeSUS        PlanType = "SUS"
	PlanTypeAPAS       PlanType = "APAS"
	PlanTypeUNIMED     PlanType = "UNIMED"
	PlanTypeParticular PlanType = "Particular"
	PlanTypeOutros     PlanType = "Outros"
)

// KnownPlanTypes lista os planos aceitos no cadastro de pacientes.
// Valores fora da lista continuam válidos na leitura e contam como plano de saúde.
var KnownPlanTypes = []PlanType{
	PlanTypeSUS,
	PlanTypeAPAS,
	PlanTypeUNIMED,
	PlanTypeParticular,
	PlanTypeOutros,
}

func (p PlanType) IsPrivate() bool {
	return p == PlanTypeParticular
}

// PayerCategory separa os procedimentos entre particular e plano de saúde
type PayerCategory string

const (
	PayerPrivate       PayerCategory = "particular"
	PayerInsurancePlan PayerCategory = "plano-saude"
)

// InsuranceMultiplier converte um procedimento de plano em unidades de faturamento
const InsuranceMultiplier = 5

// ProcedureRecord é um procedimento já unido ao nome e ao plano do paciente
type ProcedureRecord struct {
	ID            string
	OwnerID       int
	PatientID     string
	PatientName   string
	PlanType      PlanType
	PerformedAt   time.Time
	PlanValue     float64
	EvolutionText string
}

// HasEvolution indica se o procedimento tem uma evolução preenchida
func (r ProcedureRecord) HasEvolution() bool {
	return strings.TrimSpace(r.EvolutionText) != ""
}

type ProcedureEntry struct {
	PerformedAt time.Time
	PlanValue   float64
}

type EvolutionEntry struct {
	PerformedAt time.Time
	Text        string
}

// PatientSummary agrupa os procedimentos de um paciente dentro do período
type PatientSummary struct {
	PatientID   string
	PatientName string
	PlanType    PlanType
	Procedures  []ProcedureEntry
	Evolutions  []EvolutionEntry
}

func (s PatientSummary) ProcedureCount() int {
	return len(s.Procedures)
}

func (s PatientSummary) EvolutionCount() int {
	return len(s.Evolutions)
}

// FirstProcedureDate considera a lista já ordenada por data
func (s PatientSummary) FirstProcedureDate() time.Time {
	if len(s.Procedures) == 0 {
		return time.Time{}
	}
	return s.Procedures[0].PerformedAt
}

func (s PatientSummary) LastProcedureDate() time.Time {
	if len(s.Procedures) == 0 {
		return time.Time{}
	}
	return s.Procedures[len(s.Procedures)-1].PerformedAt
}
