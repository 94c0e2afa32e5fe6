package worker

// recordatorio_cron.go
// Background goroutine that periodically looks for CONFIRMADO citas of the
// next day and enqueues a reminder email for each. The recordatorio_enviado
// flag keeps the cron idempotent across ticks and restarts.

import (
	"context"
	"fmt"
	"time"

	"github.com/luisesse/beauty-manager/internal/infra"
	"github.com/luisesse/beauty-manager/internal/repository"

	"github.com/rs/zerolog/log"
)

const recordatorioBatchSize = 50

// RecordatorioCronConfig holds all dependencies for the reminder goroutine.
type RecordatorioCronConfig struct {
	CitaRepo     repository.CitaRepository
	Dispatcher   *Dispatcher
	CB           *infra.CircuitBreaker
	TickInterval time.Duration
}

// StartRecordatorioCron launches a goroutine that ticks on TickInterval,
// queries tomorrow's unreminded citas, and enqueues reminder emails.
// It respects the context for graceful shutdown.
func StartRecordatorioCron(ctx context.Context, cfg RecordatorioCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.TickInterval)
		defer ticker.Stop()

		log.Info().Dur("tick", cfg.TickInterval).Msg("recordatorio_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("recordatorio_cron: shutting down")
				return
			case <-ticker.C:
				processRecordatorios(ctx, cfg)
			}
		}
	}()
}

func processRecordatorios(ctx context.Context, cfg RecordatorioCronConfig) {
	// If the SMTP breaker is open, skip the tick entirely — queueing more
	// mail while the relay is down just grows the backlog.
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("recordatorio_cron: circuit breaker is open, skipping tick")
		return
	}

	manana := time.Now().AddDate(0, 0, 1)
	manana = time.Date(manana.Year(), manana.Month(), manana.Day(), 0, 0, 0, 0, time.UTC)

	citas, err := cfg.CitaRepo.ListarParaRecordatorio(ctx, manana, recordatorioBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("recordatorio_cron: failed to query citas")
		return
	}
	if len(citas) == 0 {
		return
	}

	log.Info().Int("count", len(citas)).Msg("recordatorio_cron: processing reminders")

	for i := range citas {
		cita := &citas[i]

		// Clientes without email can never be reminded; mark them so the
		// cron stops re-reading them every tick.
		if cita.Cliente == nil || cita.Cliente.Email == nil || *cita.Cliente.Email == "" {
			_ = cfg.CitaRepo.MarcarRecordatorioEnviado(ctx, cita.ID)
			continue
		}

		servicio := ""
		if cita.Servicio != nil {
			servicio = cita.Servicio.Nombre
		}
		payload := EmailJobPayload{
			ToEmail: *cita.Cliente.Email,
			Subject: "Recordatorio de cita",
			Body: fmt.Sprintf("Le recordamos su cita de %s mañana %s a las %s.",
				servicio, cita.Fecha.Format("2006-01-02"), cita.Hora),
		}
		if err := cfg.Dispatcher.EnqueueEmail(ctx, payload); err != nil {
			log.Error().Err(err).Str("cita_id", cita.ID.String()).Msg("recordatorio_cron: enqueue failed")
			continue
		}
		if err := cfg.CitaRepo.MarcarRecordatorioEnviado(ctx, cita.ID); err != nil {
			log.Error().Err(err).Str("cita_id", cita.ID.String()).Msg("recordatorio_cron: failed to mark cita")
		}
	}
}
