package main

import (
	"context"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/production-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/production-report-api/infrastructure/document/pdf"
	"github.com/vfg2006/production-report-api/infrastructure/document/spreadsheet"
	"github.com/vfg2006/production-report-api/infrastructure/repository"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/internal/usecases/reporting"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

// options são as flags comuns aos subcomandos
type options struct {
	OwnerID int
	Start   string
	End     string
	View    string
	Format  string
	Out     string
}

var opts options

var rootCmd = &cobra.Command{
	Use:          "report",
	Short:        "Relatórios de produção dos profissionais",
	Long:         "Gera o relatório de produção de um profissional direto do banco, sem passar pela API.",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&opts.OwnerID, "owner", 0, "ID do profissional dono dos procedimentos (obrigatório)")
	pf.StringVar(&opts.Start, "start", "", "Data inicial AAAA-MM-DD (padrão: início do mês corrente)")
	pf.StringVar(&opts.End, "end", "", "Data final AAAA-MM-DD (padrão: fim do mês corrente)")
	pf.StringVar(&opts.View, "view", "completo", "Recorte: completo, particular ou plano-saude")
	_ = rootCmd.MarkPersistentFlagRequired("owner")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// reportRequest é a entrada já validada de um subcomando
type reportRequest struct {
	view    domain.ReportView
	filters domain.ReportFilters
}

func parseRequest(o options, loc *time.Location) (reportRequest, error) {
	if o.OwnerID <= 0 {
		return reportRequest{}, errors.New("--owner deve ser um ID válido")
	}

	view, ok := domain.ParseReportView(o.View)
	if !ok {
		return reportRequest{}, errors.Errorf("recorte inválido: %q", o.View)
	}

	start, err := utils.ParseDate(o.Start, loc)
	if err != nil {
		return reportRequest{}, errors.Wrap(err, "--start inválido")
	}

	end, err := utils.ParseDate(o.End, loc)
	if err != nil {
		return reportRequest{}, errors.Wrap(err, "--end inválido")
	}

	return reportRequest{
		view:    view,
		filters: domain.ReportFilters{StartDate: start, EndDate: end},
	}, nil
}

// environment reúne as dependências abertas por um subcomando
type environment struct {
	cfg      *config.Config
	conn     *postgres.Connection
	users    repository.UserRepository
	reporter *reporting.Service
}

func (e *environment) Close() {
	if e.conn != nil {
		e.conn.Close()
	}
}

func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração")
	}

	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	// Sem mailer: a CLI só consulta e gera arquivos
	reporter := reporting.NewService(
		repository.NewProcedureRepository(conn),
		nil,
		[]reporting.DocumentRenderer{
			pdf.NewRenderer(cfg.Mail.SenderName),
			spreadsheet.NewRenderer(),
		},
		cfg,
	)

	return &environment{
		cfg:      cfg,
		conn:     conn,
		users:    repository.NewUserRepository(conn),
		reporter: reporter,
	}, nil
}

// owner busca o nome do profissional para o cabeçalho do documento
func (e *environment) owner(ownerID int) (domain.ReportOwner, error) {
	user, err := e.users.GetUserByID(ownerID)
	if err != nil {
		return domain.ReportOwner{}, errors.Wrapf(err, "erro ao buscar profissional %d", ownerID)
	}
	if user == nil {
		return domain.ReportOwner{}, errors.Errorf("profissional %d não encontrado", ownerID)
	}

	return domain.ReportOwner{ID: user.ID, Name: user.DisplayName()}, nil
}
