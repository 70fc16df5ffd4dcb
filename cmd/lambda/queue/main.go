package main

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"traceability-api/internal/config"
	"traceability-api/pkg/lambda"
)

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := lambda.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// queueName extracts the queue name from an event source ARN.
func queueName(arn string) string {
	parts := strings.Split(arn, ":")
	return parts[len(parts)-1]
}

// handler processes a batch of queue messages. Messages whose insert failed
// on a transient error are reported back for redelivery; the rest of the
// batch is acknowledged.
func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.SQSEventResponse{}, err
	}

	var failures []events.SQSBatchItemFailure
	for _, record := range event.Records {
		name := queueName(record.EventSourceARN)
		if err := container.Queue.Process(ctx, name, []byte(record.Body)); err != nil {
			container.Logger.WithError(err).WithFields(map[string]interface{}{
				"queue":      name,
				"message_id": record.MessageId,
			}).Error("Queue message failed, returning for redelivery")
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}

	return events.SQSEventResponse{BatchItemFailures: failures}, nil
}

func main() {
	awslambda.Start(handler)
}
