package mail

import (
	"context"
	"sync"
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
)

const (
	queueCapacity = 64
	maxAttempts   = 3
	retryDelay    = 30 * time.Second
)

// Queue desacopla o envio de email da requisição que o originou: as
// candidaturas enfileiram e um worker em background entrega com retry.
// Implementa ports.Notifier; o NotifyNewApplication nunca bloqueia nem
// retorna erro de entrega: fila cheia descarta e loga.
type Queue struct {
	delegate ports.Notifier
	logger   ports.Logger
	jobs     chan *entities.Influencer
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewQueue cria a fila sobre um Notifier de entrega (normalmente SMTPNotifier)
func NewQueue(delegate ports.Notifier, logger ports.Logger) *Queue {
	return &Queue{
		delegate: delegate,
		logger:   logger,
		jobs:     make(chan *entities.Influencer, queueCapacity),
		stop:     make(chan struct{}),
	}
}

// Start inicia o worker de entrega
func (q *Queue) Start() {
	q.wg.Add(1)
	go q.run()
}

// Stop encerra o worker; jobs já enfileirados são abandonados
func (q *Queue) Stop() {
	close(q.stop)
	q.wg.Wait()
}

// NotifyNewApplication enfileira a notificação. Best-effort: retorna nil
// mesmo quando a fila está cheia.
func (q *Queue) NotifyNewApplication(_ context.Context, influencer *entities.Influencer) error {
	select {
	case q.jobs <- influencer:
	default:
		q.logger.Warn("notification queue full, dropping application email",
			"influencer_id", influencer.ID,
		)
	}
	return nil
}

func (q *Queue) run() {
	defer q.wg.Done()

	for {
		select {
		case <-q.stop:
			return
		case influencer := <-q.jobs:
			q.deliver(influencer)
		}
	}
}

func (q *Queue) deliver(influencer *entities.Influencer) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := q.delegate.NotifyNewApplication(context.Background(), influencer)
		if err == nil {
			q.logger.Info("application email sent",
				"influencer_id", influencer.ID,
				"attempt", attempt,
			)
			return
		}

		q.logger.Warn("application email failed",
			"influencer_id", influencer.ID,
			"attempt", attempt,
			"error", err,
		)

		if attempt < maxAttempts {
			select {
			case <-q.stop:
				return
			case <-time.After(retryDelay):
			}
		}
	}

	q.logger.Error("application email dropped after retries",
		"influencer_id", influencer.ID,
	)
}
