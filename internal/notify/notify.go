package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pageturner/pageturner-service/pkg/kafka"
	"go.uber.org/zap"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityError Severity = "error"
)

// Event mirrors the title/description/severity triple the UI toast consumes.
type Event struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Notifier publishes mutation outcomes fire-and-forget; no caller consumes a
// result.
type Notifier interface {
	Notify(ctx context.Context, title, description string, severity Severity)
}

// New returns a no-op notifier when no producer is configured.
func New(producer sarama.SyncProducer, log *zap.Logger) Notifier {
	if producer == nil {
		return noop{}
	}
	return &kafkaNotifier{
		producer: producer,
		log:      log.Named("notify"),
	}
}

type kafkaNotifier struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

func (n *kafkaNotifier) Notify(_ context.Context, title, description string, severity Severity) {
	ev := Event{
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		n.log.Error("notify marshal", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{
		Topic: kafka.NotificationsTopic,
		Value: sarama.StringEncoder(data),
	}
	if _, _, err := n.producer.SendMessage(msg); err != nil {
		n.log.Error("notify send", zap.Error(err), zap.String("title", title))
	}
}

type noop struct{}

func (noop) Notify(context.Context, string, string, Severity) {}
