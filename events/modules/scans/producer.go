// Package scans handles Kafka event production for scan ingestion events.
package scans

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// ScanProducer handles sending scan ingestion events to Kafka
type ScanProducer struct {
	Writer *kafka.Writer
}

// NewScanProducer initializes a new Kafka writer for scan events
func NewScanProducer(brokers []string, topic string) *ScanProducer {
	return &ScanProducer{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishScanIngested sends the event to the Kafka topic
func (p *ScanProducer) PublishScanIngested(ctx context.Context, event ScanIngestedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UploadID),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *ScanProducer) Close() error {
	return p.Writer.Close()
}
