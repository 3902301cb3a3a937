package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	googleadsmocks "github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads/mocks"
	chatmocks "github.com/vfg2006/ads-status-monitor/infrastructure/notifier/chat/mocks"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-status-monitor/internal/config"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
	"github.com/vfg2006/ads-status-monitor/internal/usecases/monitoring"
	"go.uber.org/mock/gomock"
)

type monitorMocks struct {
	accountRepo   *mocks.MockAccountRepository
	snapshotRepo  *mocks.MockSnapshotRepository
	statusLogRepo *mocks.MockStatusLogRepository
	fetcher       *googleadsmocks.MockIntegrator
	notifier      *chatmocks.MockNotifier
}

func newTestMonitorService(t *testing.T, cfg *config.Config, descriptors ...*domain.EntityDescriptor) (*StatusMonitorService, *monitorMocks) {
	ctrl := gomock.NewController(t)

	m := &monitorMocks{
		accountRepo:   mocks.NewMockAccountRepository(ctrl),
		snapshotRepo:  mocks.NewMockSnapshotRepository(ctrl),
		statusLogRepo: mocks.NewMockStatusLogRepository(ctrl),
		fetcher:       googleadsmocks.NewMockIntegrator(ctrl),
		notifier:      chatmocks.NewMockNotifier(ctrl),
	}

	monitors := make([]*monitoring.Service, 0, len(descriptors))
	for _, descriptor := range descriptors {
		monitors = append(monitors, monitoring.NewService(cfg, descriptor, m.fetcher, m.snapshotRepo, m.statusLogRepo, m.notifier))
	}

	return NewStatusMonitorService(m.accountRepo, monitors, cfg), m
}

func TestStatusMonitorService_runMonitor(t *testing.T) {
	cfg := &config.Config{}

	accounts := []*domain.AdAccount{
		{ID: "ACC001", Name: "Loja A", CustomerID: "111", Status: domain.AdAccountStatusActive},
		{ID: "ACC002", Name: "Loja B", CustomerID: "222", Status: domain.AdAccountStatusActive},
	}

	t.Run("Executa todas as contas ativas em sequência", func(t *testing.T) {
		service, m := newTestMonitorService(t, cfg, domain.AdDescriptor)

		m.accountRepo.EXPECT().ListActiveAccounts().Return(accounts, nil)

		for _, account := range accounts {
			m.fetcher.EXPECT().
				FetchStatusSnapshot(gomock.Any(), account, domain.EntityTypeAd).
				Return(domain.NewSnapshot(), nil)
			m.snapshotRepo.EXPECT().
				Load(account.ID, domain.EntityTypeAd).
				Return(domain.NewSnapshot(), nil)
			m.snapshotRepo.EXPECT().
				Replace(gomock.Any(), account.ID, domain.EntityTypeAd, gomock.Any(), gomock.Any()).
				Return(nil)
		}

		service.runMonitor(service.monitors[0])

		status := service.GetStatus()["AD"].(map[string]interface{})
		assert.False(t, status["running"].(bool))
	})

	t.Run("Falha em uma conta não impede as seguintes", func(t *testing.T) {
		service, m := newTestMonitorService(t, cfg, domain.AdDescriptor)

		m.accountRepo.EXPECT().ListActiveAccounts().Return(accounts, nil)

		// ACC001 aborta no carregamento do snapshot anterior.
		m.fetcher.EXPECT().
			FetchStatusSnapshot(gomock.Any(), accounts[0], domain.EntityTypeAd).
			Return(domain.NewSnapshot(), nil)
		m.snapshotRepo.EXPECT().
			Load("ACC001", domain.EntityTypeAd).
			Return(nil, assert.AnError)

		// ACC002 completa normalmente.
		m.fetcher.EXPECT().
			FetchStatusSnapshot(gomock.Any(), accounts[1], domain.EntityTypeAd).
			Return(domain.NewSnapshot(), nil)
		m.snapshotRepo.EXPECT().
			Load("ACC002", domain.EntityTypeAd).
			Return(domain.NewSnapshot(), nil)
		m.snapshotRepo.EXPECT().
			Replace(gomock.Any(), "ACC002", domain.EntityTypeAd, gomock.Any(), gomock.Any()).
			Return(nil)

		service.runMonitor(service.monitors[0])
	})

	t.Run("Erro ao listar contas encerra a passada sem executar monitores", func(t *testing.T) {
		service, m := newTestMonitorService(t, cfg, domain.AdDescriptor)

		m.accountRepo.EXPECT().ListActiveAccounts().Return(nil, assert.AnError)

		service.runMonitor(service.monitors[0])
	})

	t.Run("Rotina já em andamento não é executada de novo", func(t *testing.T) {
		service, _ := newTestMonitorService(t, cfg, domain.AdDescriptor)

		// Simula uma passada em andamento; nenhuma chamada aos mocks é
		// esperada, então qualquer acesso falharia o teste.
		service.runMutex.Lock()
		service.running[domain.EntityTypeAd] = true
		service.runMutex.Unlock()

		service.runMonitor(service.monitors[0])

		status := service.GetStatus()["AD"].(map[string]interface{})
		assert.True(t, status["running"].(bool))
	})
}

func TestStatusMonitorService_TriggerManualRun(t *testing.T) {
	cfg := &config.Config{}

	t.Run("Tipo sem monitor registrado retorna false", func(t *testing.T) {
		service, _ := newTestMonitorService(t, cfg, domain.AdDescriptor)

		assert.False(t, service.TriggerManualRun(domain.EntityTypeKeyword))
	})

	t.Run("Tipo registrado dispara a rotina", func(t *testing.T) {
		service, m := newTestMonitorService(t, cfg, domain.AdDescriptor)

		done := make(chan struct{})
		m.accountRepo.EXPECT().
			ListActiveAccounts().
			DoAndReturn(func() ([]*domain.AdAccount, error) {
				defer close(done)
				return nil, nil
			})

		assert.True(t, service.TriggerManualRun(domain.EntityTypeAd))
		<-done
	})
}

func TestStatusMonitorService_GetStatus(t *testing.T) {
	cfg := &config.Config{
		AdMonitor:      config.MonitorJob{CronSchedule: "0 * * * *", Enabled: true},
		AdGroupMonitor: config.MonitorJob{CronSchedule: "10 * * * *", Enabled: false},
	}

	service, _ := newTestMonitorService(t, cfg, domain.AdDescriptor, domain.AdGroupDescriptor)

	status := service.GetStatus()

	assert.Len(t, status, 2)

	adStatus := status["AD"].(map[string]interface{})
	assert.True(t, adStatus["enabled"].(bool))
	assert.Equal(t, "0 * * * *", adStatus["cron_schedule"])
	assert.False(t, adStatus["running"].(bool))

	groupStatus := status["AD_GROUP"].(map[string]interface{})
	assert.False(t, groupStatus["enabled"].(bool))
	assert.Equal(t, "10 * * * *", groupStatus["cron_schedule"])
}
