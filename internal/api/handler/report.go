package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/internal/usecases/reporting"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/middleware"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

type SendReportRequest struct {
	Email string `json:"email"`
}

type SendReportResponse struct {
	Message string `json:"message"`
	domain.DispatchReceipt
}

// GetReport retorna o relatório de produção do profissional logado.
// Sem datas, usa o mês corrente.
func GetReport(service reporting.Reporter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, ok := parseReportFilters(w, r, loc)
		if !ok {
			return
		}

		view, ok := parseReportView(w, r)
		if !ok {
			return
		}

		report, err := service.GetReport(r.Context(), claims.UserID, view, filters)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		logger.WithFields(log.Fields{
			"report_owner_id":   claims.UserID,
			"report_view":       view,
			"report_procedures": report.ProcedureCount,
		}).Info("reports: relatório gerado")

		writeJSON(w, r, http.StatusOK, report)
	})
}

// GetReportViews retorna os três recortes calculados sobre a mesma busca
func GetReportViews(service reporting.Reporter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, ok := parseReportFilters(w, r, loc)
		if !ok {
			return
		}

		views, err := service.GetReportViews(r.Context(), claims.UserID, filters)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, views)
	})
}

// SendReportByEmail envia o relatório do recorte informado para o email do corpo
func SendReportByEmail(service reporting.Reporter, view domain.ReportView, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var req SendReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("reports: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		filters, ok := parseReportFilters(w, r, loc)
		if !ok {
			return
		}

		receipt, err := service.SendReportByEmail(r.Context(), claims.Owner(), view, req.Email, filters)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, SendReportResponse{
			Message:         "Relatório enviado com sucesso",
			DispatchReceipt: *receipt,
		})
	})
}

// DownloadReport devolve o relatório como arquivo (pdf ou xlsx)
func DownloadReport(service reporting.Reporter, loc *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filters, ok := parseReportFilters(w, r, loc)
		if !ok {
			return
		}

		view, ok := parseReportView(w, r)
		if !ok {
			return
		}

		format, valid := domain.ParseDocumentFormat(r.URL.Query().Get("format"))
		if !valid {
			apiErrors.WriteError(w, apiErrors.ErrUnsupportedReportFormat, "Formato não suportado. Valores aceitos: pdf, xlsx", nil)
			return
		}

		document, err := service.DownloadReport(r.Context(), claims.Owner(), format, view, filters)
		if err != nil {
			handleReportError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", document.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, document.FileName))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(document.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(document.Content); err != nil {
			logger.WithError(err).Error("reports: erro ao enviar arquivo")
		}
	})
}

func parseReportFilters(w http.ResponseWriter, r *http.Request, loc *time.Location) (domain.ReportFilters, bool) {
	logger := log.ForContext(r.Context())
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("startDate"), loc)
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": query.Get("startDate"),
			"error":      err.Error(),
		}).Warn("reports: parâmetro startDate inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "startDate inválido, use AAAA-MM-DD", nil)
		return domain.ReportFilters{}, false
	}

	endDate, err := utils.ParseDate(query.Get("endDate"), loc)
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": query.Get("endDate"),
			"error":    err.Error(),
		}).Warn("reports: parâmetro endDate inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "endDate inválido, use AAAA-MM-DD", nil)
		return domain.ReportFilters{}, false
	}

	return domain.ReportFilters{StartDate: startDate, EndDate: endDate}, true
}

func parseReportView(w http.ResponseWriter, r *http.Request) (domain.ReportView, bool) {
	view, ok := domain.ParseReportView(r.URL.Query().Get("view"))
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidReportView, "Recorte inválido. Valores aceitos: completo, particular, plano-saude", nil)
		return "", false
	}
	return view, true
}

// handleReportError converte os erros do relatório no formato padrão da API.
// Falhas de infraestrutura saem com mensagem genérica; a causa fica no log do serviço.
func handleReportError(w http.ResponseWriter, r *http.Request, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		message := reportErr.Details
		if message == "" {
			message = reportErr.Err.Error()
		}
		if errors.Is(err, reporting.ErrFetchContractViolation) {
			message = "Erro interno ao gerar relatório"
		}
		apiErrors.WriteError(w, reportErr.Code, message, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("reports: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao gerar relatório", nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("falha ao codificar resposta")
	}
}
