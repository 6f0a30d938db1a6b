package reporting

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrMissingDestination = errors.New("email de destino não informado")
	ErrInvalidDestination = errors.New("email de destino inválido")
	ErrMissingPeriod      = errors.New("período do relatório não informado")
	ErrInvalidView        = errors.New("recorte de relatório inválido")
	ErrUnsupportedFormat  = errors.New("formato de documento não suportado")

	ErrReportEmpty = errors.New("nenhum procedimento encontrado no período")

	// Falhas de infraestrutura; a causa fica apenas no log
	ErrFetchFailed    = errors.New("erro ao buscar procedimentos")
	ErrDeliveryFailed = errors.New("falha ao enviar relatório por email")
	ErrRenderFailed   = errors.New("falha ao gerar documento do relatório")

	ErrMailerUnavailable = errors.New("envio de email não configurado")

	// ErrFetchContractViolation indica procedimento sem paciente resolvido. É defeito
	// na consulta, não uma condição recuperável.
	ErrFetchContractViolation = errors.New("procedimento sem paciente associado")
)

// ReportError carrega o código de erro da API junto com o erro base
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError indica erro de entrada, detectado antes de qualquer busca
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingDestination) ||
		errors.Is(err, ErrInvalidDestination) ||
		errors.Is(err, ErrMissingPeriod) ||
		errors.Is(err, ErrInvalidView) ||
		errors.Is(err, ErrUnsupportedFormat)
}
