package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/adapters/storage"
	"restaurant-booking-api/internal/config"
)

const idBatchSize = 10

var objectStorage storage.ObjectStorage

func init() {
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("Failed to load configuration: %v", err)
	}
	config.SetupLogging(cfg.Environment)

	if cfg.Storage.Bucket == "" {
		log.Panic("TARGET_BUCKET environment variable is not set")
	}

	objectStorage, err = storage.NewS3Storage(context.Background(), cfg.AWS.Region, cfg.Storage.Bucket)
	if err != nil {
		log.Panicf("Failed to create S3 storage: %v", err)
	}
}

type idBatch struct {
	IDs []string `json:"ids"`
}

func handler(ctx context.Context, event events.CloudWatchEvent) (string, error) {
	batch := idBatch{IDs: make([]string, 0, idBatchSize)}
	for i := 0; i < idBatchSize; i++ {
		batch.IDs = append(batch.IDs, uuid.NewString())
	}

	data, err := json.Marshal(batch)
	if err != nil {
		logrus.WithError(err).Error("Failed to serialize id batch")
		return "ERROR", nil
	}

	key := time.Now().UTC().Format(time.RFC3339Nano)
	if err := objectStorage.Put(ctx, key, data, "application/json"); err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to store id batch")
		return "ERROR", nil
	}

	logrus.WithField("key", key).Info("Stored id batch")
	return "SUCCESS", nil
}

func main() {
	awslambda.Start(handler)
}
