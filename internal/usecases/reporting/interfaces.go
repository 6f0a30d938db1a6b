package reporting

import (
	"context"

	"github.com/vfg2006/production-report-api/internal/domain"
)

// Reporter é a porta de entrada dos relatórios de produção
type Reporter interface {
	GetReport(ctx context.Context, ownerID int, view domain.ReportView, filters domain.ReportFilters) (*domain.ReportData, error)
	GetReportViews(ctx context.Context, ownerID int, filters domain.ReportFilters) (*domain.ReportViews, error)
	SendReportByEmail(ctx context.Context, owner domain.ReportOwner, view domain.ReportView, to string, filters domain.ReportFilters) (*domain.DispatchReceipt, error)
	DownloadReport(ctx context.Context, owner domain.ReportOwner, format domain.DocumentFormat, view domain.ReportView, filters domain.ReportFilters) (*domain.ReportDocument, error)
}

// Mailer entrega um relatório pronto por email. Não pode alterar o relatório recebido.
type Mailer interface {
	SendReport(ctx context.Context, message domain.ReportMessage) error
}

// DocumentRenderer gera o arquivo de download de um relatório pronto
type DocumentRenderer interface {
	Format() domain.DocumentFormat
	ContentType() string
	Render(ctx context.Context, owner domain.ReportOwner, report *domain.ReportData) ([]byte, error)
}
