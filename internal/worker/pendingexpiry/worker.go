package pendingexpiry

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ExpiryReason причина отмены, записываемая в бронирование
const ExpiryReason = "pending booking expired"

// Worker периодически отменяет pending бронирования старше TTL, освобождая слоты
type Worker struct {
	repo     BookingRepository
	events   EventPublisher
	metrics  Metrics
	ttl      time.Duration
	schedule string
	log      Logger
	now      func() time.Time

	cron *cron.Cron
}

// NewWorker создает новый экземпляр задачи
// schedule - cron выражение, поддерживаются дескрипторы вида "@every 1m"
func NewWorker(repo BookingRepository, events EventPublisher, metrics Metrics, ttl time.Duration, schedule string, log Logger) *Worker {
	return &Worker{
		repo:     repo,
		events:   events,
		metrics:  metrics,
		ttl:      ttl,
		schedule: schedule,
		log:      log,
		now:      time.Now,
	}
}

// Start регистрирует задачу в планировщике и запускает его
// Запуск пропускается, если предыдущий еще выполняется
func (w *Worker) Start(ctx context.Context) error {
	logger := cronLogger{log: w.log}
	w.cron = cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := w.cron.AddFunc(w.schedule, func() {
		if _, err := w.RunOnce(ctx); err != nil {
			w.log.Error("PendingExpiry: run failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("pendingexpiry: invalid schedule %q: %w", w.schedule, err)
	}

	w.cron.Start()
	w.log.Info("PendingExpiry: started with schedule=%q, ttl=%s", w.schedule, w.ttl)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего запуска
func (w *Worker) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.log.Info("PendingExpiry: stopped")
}

// RunOnce отменяет просроченные pending бронирования и возвращает их количество
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	cutoff := w.now().UTC().Add(-w.ttl)

	expired, err := w.repo.ExpirePending(ctx, cutoff, ExpiryReason)
	if err != nil {
		return 0, fmt.Errorf("pendingexpiry: expire pending bookings: %w", err)
	}

	for _, booking := range expired {
		w.events.BookingExpired(ctx, booking)
	}
	w.metrics.AddBookingsExpired(len(expired))

	if len(expired) > 0 {
		w.log.Info("PendingExpiry: cancelled %d pending bookings created before %s", len(expired), cutoff.Format(time.RFC3339))
	}
	return len(expired), nil
}

// cronLogger адаптер printf логгера к cron.Logger
type cronLogger struct {
	log Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info("cron: %s %v", msg, keysAndValues)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: %s: %v %v", msg, err, keysAndValues)
}
