package main

import (
	"context"
	"os"
	"path"
	"runtime"
	_ "time/tzdata"

	"github.com/vfg2006/production-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/production-report-api/infrastructure/document/pdf"
	"github.com/vfg2006/production-report-api/infrastructure/document/spreadsheet"
	"github.com/vfg2006/production-report-api/infrastructure/integrator/mailer"
	"github.com/vfg2006/production-report-api/infrastructure/integrator/mailer/smtpclient"
	"github.com/vfg2006/production-report-api/infrastructure/repository"
	"github.com/vfg2006/production-report-api/internal/api"
	"github.com/vfg2006/production-report-api/internal/api/handler"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/scheduler"
	"github.com/vfg2006/production-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/production-report-api/internal/usecases/reporting"
	"github.com/vfg2006/production-report-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	procedureRepo := repository.NewProcedureRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	mailIntegrator, err := mailer.New(cfg, smtpclient.NewClient(cfg))
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar templates de email")
	}

	reportService := reporting.NewService(
		procedureRepo,
		mailIntegrator,
		[]reporting.DocumentRenderer{
			pdf.NewRenderer(cfg.Mail.SenderName),
			spreadsheet.NewRenderer(),
		},
		cfg,
	)

	monthlyReportDispatch := scheduler.NewMonthlyReportDispatchService(userRepo, reportService, cfg)
	if err := monthlyReportDispatch.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do envio mensal de relatórios")
	} else {
		log.L.Info("Agendador do envio mensal de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		reportService,
		authenticator,
		handler.CronJobServices{MonthlyReportDispatch: monthlyReportDispatch},
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
