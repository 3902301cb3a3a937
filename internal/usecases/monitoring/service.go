package monitoring

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-status-monitor/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-status-monitor/infrastructure/notifier/chat"
	"github.com/vfg2006/ads-status-monitor/infrastructure/repository"
	"github.com/vfg2006/ads-status-monitor/internal/config"
	"github.com/vfg2006/ads-status-monitor/internal/domain"
	"github.com/vfg2006/ads-status-monitor/pkg/utils"
)

// RunResult resume uma execução do pipeline para uma conta.
type RunResult struct {
	RunID      string            `json:"run_id"`
	AccountID  string            `json:"account_id"`
	EntityType domain.EntityType `json:"entity_type"`
	FirstRun   bool              `json:"first_run"`
	Fetched    int               `json:"fetched"`
	Changes    int               `json:"changes"`
}

// Service executa o pipeline buscar-comparar-registrar-notificar-persistir
// para um tipo de entidade. Os três monitores são instâncias deste serviço
// com descritores diferentes.
type Service struct {
	cfg           *config.Config
	descriptor    *domain.EntityDescriptor
	fetcher       googleads.Integrator
	snapshotRepo  repository.SnapshotRepository
	statusLogRepo repository.StatusLogRepository
	notifier      chat.Notifier
}

func NewService(
	cfg *config.Config,
	descriptor *domain.EntityDescriptor,
	fetcher googleads.Integrator,
	snapshotRepo repository.SnapshotRepository,
	statusLogRepo repository.StatusLogRepository,
	notifier chat.Notifier,
) *Service {
	return &Service{
		cfg:           cfg,
		descriptor:    descriptor,
		fetcher:       fetcher,
		snapshotRepo:  snapshotRepo,
		statusLogRepo: statusLogRepo,
		notifier:      notifier,
	}
}

func (s *Service) EntityType() domain.EntityType {
	return s.descriptor.Type
}

// RunForAccount executa uma passada completa para a conta. Os domínios de
// falha são disjuntos por construção: falha de busca degrada para o
// mapeamento parcial, falha de notificação é registrada e ignorada, e apenas
// falha de acesso ao armazenamento aborta a execução — sem baseline nem onde
// persistir, não há o que fazer.
func (s *Service) RunForAccount(ctx context.Context, account *domain.AdAccount) (*RunResult, error) {
	runID, _ := utils.GenerateID()

	logger := logrus.WithFields(logrus.Fields{
		"run_id":      runID,
		"account_id":  account.ID,
		"entity_type": s.descriptor.Type,
	})
	logger.Info("Iniciando execução do monitoramento")

	current, fetchErr := s.fetcher.FetchStatusSnapshot(ctx, account, s.descriptor.Type)
	if fetchErr != nil {
		// Falha de transporte não é fatal: segue com o que foi acumulado,
		// que pode ser nada.
		logger.WithError(fetchErr).Error("Falha na busca de status, continuando com mapeamento parcial")
	}
	if current == nil {
		current = domain.NewSnapshot()
	}

	previous, err := s.snapshotRepo.Load(account.ID, s.descriptor.Type)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar snapshot anterior")
	}

	now := time.Now()
	changes := DetectChanges(s.descriptor, account, previous, current, now)

	result := &RunResult{
		RunID:      runID,
		AccountID:  account.ID,
		EntityType: s.descriptor.Type,
		FirstRun:   previous.IsEmpty(),
		Fetched:    current.Len(),
		Changes:    len(changes),
	}

	if result.FirstRun {
		logger.WithField("entities", current.Len()).Info("Primeira execução: baseline gravado sem registros de mudança")
	}

	if len(changes) > 0 {
		if err := s.statusLogRepo.Append(changes); err != nil {
			return nil, errors.Wrap(err, "erro ao gravar log de mudanças")
		}

		summary := Summarize(s.descriptor, changes)
		message := FormatAlertMessage(account, s.descriptor, summary, s.cfg.Monitor.LogViewURL)
		if err := s.notifier.Notify(ctx, account, message); err != nil {
			// Alerta é melhor esforço: a execução completa normalmente.
			logger.WithError(err).Error("Falha ao notificar webhook, execução continua")
		}

		logger.WithField("changes", len(changes)).Info("Mudanças de status registradas")
	}

	if err := s.snapshotRepo.Replace(ctx, account.ID, s.descriptor.Type, current, now); err != nil {
		return nil, errors.Wrap(err, "erro ao persistir snapshot atual")
	}

	logger.WithFields(logrus.Fields{
		"fetched": result.Fetched,
		"changes": result.Changes,
	}).Info("Execução do monitoramento concluída")

	return result, nil
}
