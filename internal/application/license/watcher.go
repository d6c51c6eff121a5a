package license

import (
	"github.com/robfig/cron/v3"

	"github.com/diegofsiilva/cenas-bar/pkg/logger"
)

// Watcher reconsulta o estado da licença de hora em hora e registra alertas
// quando a expiração se aproxima. Roda independente e sem bloquear as demais
// operações; a checagem é somente leitura.
type Watcher struct {
	svc  *Service
	log  *logger.Logger
	cron *cron.Cron
}

// NewWatcher constrói o watcher de expiração.
func NewWatcher(svc *Service, log *logger.Logger) *Watcher {
	return &Watcher{svc: svc, log: log, cron: cron.New()}
}

// Start checa imediatamente e agenda a reconsulta horária.
func (w *Watcher) Start() error {
	w.check()
	if _, err := w.cron.AddFunc("@hourly", w.check); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

// Stop interrompe o agendamento. Não espera checagem em andamento.
func (w *Watcher) Stop() {
	w.cron.Stop()
}

func (w *Watcher) check() {
	info, err := w.svc.Info()
	if err != nil {
		w.log.Error().Err(err).Msg("consulta de licença falhou")
		return
	}
	switch {
	case info.ExpirationDate == nil:
		w.log.Warn().Msg("sistema não ativado")
	case !info.IsValid:
		w.log.Error().Msg("licença expirada")
	case info.DaysRemaining <= w.svc.WarningDays():
		w.log.Warn().Int("dias_restantes", info.DaysRemaining).Msg("licença próxima de expirar")
	default:
		w.log.Debug().Int("dias_restantes", info.DaysRemaining).Msg("licença válida")
	}
}
