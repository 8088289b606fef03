package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	kgo "github.com/segmentio/kafka-go"
)

// KafkaPublisher writes task events to a Kafka topic, keyed by task id so
// events for one task stay ordered within a partition.
type KafkaPublisher struct {
	writer  *kgo.Writer
	timeout time.Duration
}

func NewKafkaPublisher(brokersCSV, topic string) *KafkaPublisher {
	w := &kgo.Writer{
		Addr:         kgo.TCP(splitCSV(brokersCSV)...),
		Topic:        topic,
		Balancer:     &kgo.LeastBytes{},
		RequiredAcks: kgo.RequireOne,
	}

	return &KafkaPublisher{
		writer:  w,
		timeout: 3 * time.Second,
	}
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

func (p *KafkaPublisher) Publish(ctx context.Context, event TaskEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Small timeout so request handling doesn't hang if Kafka is down.
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.writer.WriteMessages(cctx, kgo.Message{
		Key:   []byte(event.TaskID),
		Value: b,
		Time:  event.At,
	})
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
