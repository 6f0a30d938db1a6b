package reporting

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/vfg2006/production-report-api/infrastructure/repository"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

const (
	defaultFetchTimeout  = 10 * time.Second
	defaultMailTimeout   = 30 * time.Second
	defaultRenderTimeout = 20 * time.Second
)

type Service struct {
	procedureRepo repository.ProcedureRepository
	mailer        Mailer
	renderers     map[domain.DocumentFormat]DocumentRenderer
	cfg           *config.Config
	now           func() time.Time
}

var _ Reporter = (*Service)(nil)

func NewService(
	procedureRepo repository.ProcedureRepository,
	mailer Mailer,
	renderers []DocumentRenderer,
	cfg *config.Config,
) *Service {
	byFormat := make(map[domain.DocumentFormat]DocumentRenderer, len(renderers))
	for _, renderer := range renderers {
		byFormat[renderer.Format()] = renderer
	}

	return &Service{
		procedureRepo: procedureRepo,
		mailer:        mailer,
		renderers:     byFormat,
		cfg:           cfg,
		now:           time.Now,
	}
}

// WithClock troca o relógio usado como referência do mês corrente
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) GetReport(ctx context.Context, ownerID int, view domain.ReportView, filters domain.ReportFilters) (*domain.ReportData, error) {
	if _, ok := domain.ParseReportView(string(view)); !ok {
		return nil, NewReportError(ErrInvalidView, apiErrors.ErrInvalidReportView, fmt.Sprintf("Recorte desconhecido: %s", view))
	}

	period := ResolvePeriod(filters, s.reference())

	records, err := s.fetch(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}

	report, err := BuildView(view, period, records)
	if err != nil {
		s.logDefect(ctx, ownerID, err)
		return nil, err
	}

	return report, nil
}

func (s *Service) GetReportViews(ctx context.Context, ownerID int, filters domain.ReportFilters) (*domain.ReportViews, error) {
	period := ResolvePeriod(filters, s.reference())

	records, err := s.fetch(ctx, ownerID, period)
	if err != nil {
		return nil, err
	}

	views, err := BuildViews(period, records)
	if err != nil {
		s.logDefect(ctx, ownerID, err)
		return nil, err
	}

	return views, nil
}

func (s *Service) SendReportByEmail(
	ctx context.Context,
	owner domain.ReportOwner,
	view domain.ReportView,
	to string,
	filters domain.ReportFilters,
) (*domain.DispatchReceipt, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, NewReportError(ErrMissingDestination, apiErrors.ErrMissingRequiredData, "Email de destino é obrigatório")
	}

	address, err := mail.ParseAddress(to)
	if err != nil {
		return nil, NewReportError(ErrInvalidDestination, apiErrors.ErrInvalidFormat, "Email de destino inválido")
	}

	if s.mailer == nil {
		return nil, NewReportError(ErrMailerUnavailable, apiErrors.ErrCommunication, "Envio de email não configurado")
	}

	report, err := s.GetReport(ctx, owner.ID, view, filters)
	if err != nil {
		return nil, err
	}

	protocol, err := utils.NewProtocol()
	if err != nil {
		return nil, NewReportError(err, apiErrors.ErrInternalServer, "Erro ao gerar protocolo de envio")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"report_owner_id": owner.ID,
		"report_view":     report.View,
		"report_protocol": protocol,
	})

	mailCtx, cancel := context.WithTimeout(ctx, timeoutOr(s.cfg.Report.MailTimeout, defaultMailTimeout))
	defer cancel()

	err = s.mailer.SendReport(mailCtx, domain.ReportMessage{
		To:       address.Address,
		Owner:    owner,
		Protocol: protocol,
		Report:   report,
	})
	if err != nil {
		logger.WithError(err).Error("reporting: erro ao enviar relatório por email")
		return nil, NewReportError(ErrDeliveryFailed, apiErrors.ErrExternalService, "Não foi possível enviar o relatório por email")
	}

	logger.Info("reporting: relatório enviado por email")

	return &domain.DispatchReceipt{
		Email:    address.Address,
		Protocol: protocol,
		View:     report.View,
	}, nil
}

func (s *Service) DownloadReport(
	ctx context.Context,
	owner domain.ReportOwner,
	format domain.DocumentFormat,
	view domain.ReportView,
	filters domain.ReportFilters,
) (*domain.ReportDocument, error) {
	renderer, exists := s.renderers[format]
	if !exists {
		return nil, NewReportError(ErrUnsupportedFormat, apiErrors.ErrUnsupportedReportFormat, fmt.Sprintf("Formato não suportado: %s", format))
	}

	if _, ok := domain.ParseReportView(string(view)); !ok {
		return nil, NewReportError(ErrInvalidView, apiErrors.ErrInvalidReportView, fmt.Sprintf("Recorte desconhecido: %s", view))
	}

	period, err := RequirePeriod(filters)
	if err != nil {
		return nil, err
	}

	records, err := s.fetch(ctx, owner.ID, period)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, NewReportError(ErrReportEmpty, apiErrors.ErrReportEmpty, "Nenhum procedimento encontrado no período informado")
	}

	report, err := BuildView(view, period, records)
	if err != nil {
		s.logDefect(ctx, owner.ID, err)
		return nil, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, timeoutOr(s.cfg.Report.RenderTimeout, defaultRenderTimeout))
	defer cancel()

	content, err := renderer.Render(renderCtx, owner, report)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"report_owner_id": owner.ID,
			"report_format":   format,
		}).Error("reporting: erro ao gerar documento do relatório")
		return nil, NewReportError(ErrRenderFailed, apiErrors.ErrExternalService, "Não foi possível gerar o documento do relatório")
	}

	return &domain.ReportDocument{
		FileName:    DocumentFileName(owner, period, format),
		ContentType: renderer.ContentType(),
		Content:     content,
	}, nil
}

// DocumentFileName monta "relatorio-<profissional>-<inicio>-a-<fim>.<formato>"
func DocumentFileName(owner domain.ReportOwner, period domain.Period, format domain.DocumentFormat) string {
	name := utils.Slugify(owner.Name)
	if name == "" {
		name = fmt.Sprintf("profissional-%d", owner.ID)
	}

	return fmt.Sprintf(
		"relatorio-%s-%s-a-%s.%s",
		name,
		period.Start.Format(time.DateOnly),
		period.End.Format(time.DateOnly),
		format,
	)
}

func (s *Service) fetch(ctx context.Context, ownerID int, period domain.Period) ([]domain.ProcedureRecord, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, timeoutOr(s.cfg.Report.FetchTimeout, defaultFetchTimeout))
	defer cancel()

	records, err := s.procedureRepo.FetchByOwnerAndPeriod(fetchCtx, ownerID, period.Start, period.End)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"report_owner_id": ownerID,
			"report_start":    period.Start,
			"report_end":      period.End,
		}).Error("reporting: erro ao buscar procedimentos")
		return nil, NewReportError(ErrFetchFailed, apiErrors.ErrDatabaseOperation, "Erro ao buscar procedimentos do período")
	}

	return records, nil
}

func (s *Service) logDefect(ctx context.Context, ownerID int, err error) {
	log.ForContext(ctx).WithError(err).WithField("report_owner_id", ownerID).
		Error("reporting: procedimentos fora do contrato da consulta")
}

// reference é o "agora" no fuso da aplicação
func (s *Service) reference() time.Time {
	loc := s.cfg.App.Location
	if loc == nil {
		loc = time.Local
	}
	return s.now().In(loc)
}

func timeoutOr(value, fallback time.Duration) time.Duration {
	if value <= 0 {
		return fallback
	}
	return value
}
