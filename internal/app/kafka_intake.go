package app

import (
	"delivery-dispatch/internal/config"
	"delivery-dispatch/internal/logx"
	"delivery-dispatch/internal/service/intake"
	"delivery-dispatch/internal/transport/kafka"
)

// newIntakeConsumer wires the job-intake processor behind the Kafka consumer.
// Returns a nil consumer when no brokers are configured.
func newIntakeConsumer(cfg *config.Config, logger logx.Logger, p *intake.Processor) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, p.Handle)
}
