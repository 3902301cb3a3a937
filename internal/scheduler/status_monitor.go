package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-status-monitor/internal/config"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
	"github.com/vfg2006/ads-status-monitor/internal/usecases/monitoring"
)

// StatusMonitorService agenda e executa as rotinas de monitoramento de
// status, uma por tipo de entidade. O guard de execução garante no máximo
// uma passada de cada rotina por vez, então cada execução tem acesso
// exclusivo ao snapshot e ao log da conta.
type StatusMonitorService struct {
	scheduler       *gocron.Scheduler
	appConfig       *config.Config
	accountRepo     repository.AccountRepository
	monitors        []*monitoring.Service
	runMutex        sync.Mutex
	running         map[domain.EntityType]bool
	lastStartedAt   map[domain.EntityType]time.Time
	lastCompletedAt map[domain.EntityType]time.Time
}

func NewStatusMonitorService(
	accountRepo repository.AccountRepository,
	monitors []*monitoring.Service,
	appConfig *config.Config,
) *StatusMonitorService {
	scheduler := gocron.NewScheduler(time.Local)

	for _, monitor := range monitors {
		job := appConfig.MonitorJobFor(string(monitor.EntityType()))
		logrus.WithFields(logrus.Fields{
			"entity_type":   monitor.EntityType(),
			"cron_schedule": job.CronSchedule,
			"enabled":       job.Enabled,
		}).Info("Configuração da rotina de monitoramento carregada")
	}

	return &StatusMonitorService{
		scheduler:       scheduler,
		appConfig:       appConfig,
		accountRepo:     accountRepo,
		monitors:        monitors,
		running:         make(map[domain.EntityType]bool),
		lastStartedAt:   make(map[domain.EntityType]time.Time),
		lastCompletedAt: make(map[domain.EntityType]time.Time),
	}
}

// Start agenda as rotinas habilitadas e inicia o agendador em background.
func (s *StatusMonitorService) Start(ctx context.Context) error {
	scheduled := 0

	for _, monitor := range s.monitors {
		monitor := monitor
		job := s.appConfig.MonitorJobFor(string(monitor.EntityType()))

		if !job.Enabled {
			logrus.WithField("entity_type", monitor.EntityType()).Info("Rotina de monitoramento desabilitada por configuração")
			continue
		}

		_, err := s.scheduler.Cron(job.CronSchedule).Do(func() {
			s.runMonitor(monitor)
		})
		if err != nil {
			return fmt.Errorf("erro ao agendar monitoramento de %s: %w", monitor.EntityType(), err)
		}
		scheduled++
	}

	if scheduled == 0 {
		logrus.Info("Nenhuma rotina de monitoramento habilitada")
		return nil
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de monitoramento de status")
		s.scheduler.Stop()
	}()

	return nil
}

// runMonitor executa uma rotina para todas as contas ativas, com o guard de
// sobreposição por tipo de entidade.
func (s *StatusMonitorService) runMonitor(monitor *monitoring.Service) {
	entityType := monitor.EntityType()

	s.runMutex.Lock()
	if s.running[entityType] {
		s.runMutex.Unlock()
		logrus.WithField("entity_type", entityType).Info("Monitoramento já em andamento, ignorando")
		return
	}
	s.running[entityType] = true
	s.lastStartedAt[entityType] = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running[entityType] = false
		s.lastCompletedAt[entityType] = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.WithField("entity_type", entityType).Info("Iniciando monitoramento para todas as contas ativas")

	accounts, err := s.accountRepo.ListActiveAccounts()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de contas para monitoramento")
		return
	}

	if len(accounts) == 0 {
		logrus.Info("Nenhuma conta ativa encontrada para monitoramento")
		return
	}

	delay := time.Duration(s.appConfig.Monitor.RequestDelaySeconds) * time.Second

	for i, account := range accounts {
		if i > 0 && delay > 0 {
			time.Sleep(delay)
		}

		result, err := monitor.RunForAccount(context.Background(), account)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account_id":  account.ID,
				"entity_type": entityType,
			}).Error("Execução do monitoramento abortada para a conta")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"entity_type": entityType,
			"changes":     result.Changes,
			"first_run":   result.FirstRun,
		}).Debug("Conta monitorada")
	}

	logrus.WithField("entity_type", entityType).Info("Monitoramento concluído para todas as contas")
}

// TriggerManualRun dispara uma rotina fora do agendamento. Retorna false se o
// tipo de entidade não tem monitor registrado.
func (s *StatusMonitorService) TriggerManualRun(entityType domain.EntityType) bool {
	for _, monitor := range s.monitors {
		if monitor.EntityType() == entityType {
			go s.runMonitor(monitor)
			return true
		}
	}
	return false
}

// GetStatus expõe o estado das rotinas para o endpoint de status.
func (s *StatusMonitorService) GetStatus() map[string]interface{} {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	status := make(map[string]interface{})
	for _, monitor := range s.monitors {
		entityType := monitor.EntityType()
		job := s.appConfig.MonitorJobFor(string(entityType))
		status[string(entityType)] = map[string]interface{}{
			"enabled":           job.Enabled,
			"cron_schedule":     job.CronSchedule,
			"running":           s.running[entityType],
			"last_started_at":   s.lastStartedAt[entityType],
			"last_completed_at": s.lastCompletedAt[entityType],
		}
	}

	return status
}
