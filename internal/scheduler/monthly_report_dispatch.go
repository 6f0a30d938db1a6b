package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/internal/usecases/reporting"
	"github.com/vfg2006/production-report-api/pkg/log"
	"github.com/vfg2006/production-report-api/pkg/utils"
)

// SubscriberLister lista os profissionais que recebem o relatório mensal
type SubscriberLister interface {
	ListReportSubscribers(ctx context.Context) ([]*domain.User, error)
}

// MonthlyReportDispatchConfig representa a configuração do envio mensal de relatórios
type MonthlyReportDispatchConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	Enabled             bool
}

// DispatchSummary é o resultado de uma execução do envio mensal
type DispatchSummary struct {
	Period  domain.Period `json:"period"`
	Sent    int           `json:"sent"`
	Skipped int           `json:"skipped"`
	Failed  int           `json:"failed"`
}

// MonthlyReportDispatchService envia, no início de cada mês, o relatório completo do mês
// anterior para o email de relatório de cada profissional
type MonthlyReportDispatchService struct {
	scheduler   *gocron.Scheduler
	config      MonthlyReportDispatchConfig
	location    *time.Location
	subscribers SubscriberLister
	reporter    reporting.Reporter
	now         func() time.Time

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         *DispatchSummary
}

func NewMonthlyReportDispatchService(
	subscribers SubscriberLister,
	reporter reporting.Reporter,
	appConfig *config.Config,
) *MonthlyReportDispatchService {
	dispatchConfig := MonthlyReportDispatchConfig{
		CronSchedule:        appConfig.MonthlyReportDispatch.CronSchedule,
		RequestDelaySeconds: appConfig.MonthlyReportDispatch.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.MonthlyReportDispatch.MaxConcurrentJobs,
		Enabled:             appConfig.MonthlyReportDispatch.Enabled,
	}
	if dispatchConfig.MaxConcurrentJobs < 1 {
		dispatchConfig.MaxConcurrentJobs = 1
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":         dispatchConfig.CronSchedule,
		"request_delay_seconds": dispatchConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   dispatchConfig.MaxConcurrentJobs,
		"enabled":               dispatchConfig.Enabled,
	}).Info("Configuração do envio mensal de relatórios carregada")

	return &MonthlyReportDispatchService{
		scheduler:   gocron.NewScheduler(location),
		config:      dispatchConfig,
		location:    location,
		subscribers: subscribers,
		reporter:    reporter,
		now:         time.Now,
	}
}

// Start agenda o envio. Não faz nada quando desabilitado.
func (s *MonthlyReportDispatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Envio mensal de relatórios desabilitado por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do envio mensal de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.dispatch(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio mensal de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador do envio mensal de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// PreviousMonth retorna o mês civil anterior à referência, no fuso configurado
func (s *MonthlyReportDispatchService) PreviousMonth(reference time.Time) domain.Period {
	month := utils.FirstDayOfMonth(reference.In(s.location)).AddDate(0, -1, 0)
	return domain.Period{
		Start: utils.StartOfDay(month),
		End:   utils.EndOfDay(utils.LastDayOfMonth(month)),
	}
}

// dispatch executa um envio completo. Retorna nil quando outro envio já está em andamento.
func (s *MonthlyReportDispatchService) dispatch(ctx context.Context) *DispatchSummary {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Envio mensal de relatórios já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	summary := &DispatchSummary{Period: s.PreviousMonth(s.now())}

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSummary = summary
		s.syncMutex.Unlock()
	}()

	logger := log.L.WithFields(log.Fields{
		"start_date": summary.Period.Start.Format(time.DateOnly),
		"end_date":   summary.Period.End.Format(time.DateOnly),
	})
	logger.Info("Iniciando envio mensal de relatórios")

	users, err := s.subscribers.ListReportSubscribers(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar profissionais para o envio mensal")
		return summary
	}

	if len(users) == 0 {
		logger.Info("Nenhum profissional com email de relatório cadastrado")
		return summary
	}

	s.sendAll(ctx, users, summary)

	logger.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"sent":     summary.Sent,
		"skipped":  summary.Skipped,
		"failed":   summary.Failed,
	}).Info("Envio mensal de relatórios concluído")

	return summary
}

func (s *MonthlyReportDispatchService) sendAll(ctx context.Context, users []*domain.User, summary *DispatchSummary) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup
	var mu sync.Mutex

	filters := domain.ReportFilters{
		StartDate: &summary.Period.Start,
		EndDate:   &summary.Period.End,
	}

	for _, user := range users {
		if user.ReportEmail == nil || *user.ReportEmail == "" {
			mu.Lock()
			summary.Skipped++
			mu.Unlock()
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(u *domain.User) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			owner := domain.ReportOwner{ID: u.ID, Name: u.DisplayName()}
			sent := s.sendOne(ctx, owner, *u.ReportEmail, filters)

			mu.Lock()
			if sent {
				summary.Sent++
			} else {
				summary.Failed++
			}
			mu.Unlock()

			if s.config.RequestDelaySeconds > 0 {
				time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
			}
		}(user)
	}

	wg.Wait()
}

func (s *MonthlyReportDispatchService) sendOne(ctx context.Context, owner domain.ReportOwner, to string, filters domain.ReportFilters) bool {
	logger := log.L.WithFields(log.Fields{
		"report_owner_id": owner.ID,
		"email":           to,
	})

	receipt, err := s.reporter.SendReportByEmail(ctx, owner, domain.ReportViewFull, to, filters)
	if err != nil {
		logger.WithError(err).Error("Erro ao enviar relatório mensal")
		return false
	}

	logger.WithField("report_protocol", receipt.Protocol).Info("Relatório mensal enviado")
	return true
}

// TriggerManualSync inicia manualmente um envio mensal em segundo plano
func (s *MonthlyReportDispatchService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Envio mensal de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando envio manual dos relatórios mensais")
	go s.dispatch(context.Background())
}

// GetStatus retorna o status atual do envio
func (s *MonthlyReportDispatchService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_summary":           s.lastSummary,
	}
}
