package main

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/grp1-tf-cp2/todo-lambda/internal/config"
	"github.com/grp1-tf-cp2/todo-lambda/internal/handler"
	"github.com/grp1-tf-cp2/todo-lambda/internal/logger"
	"github.com/grp1-tf-cp2/todo-lambda/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// CloudWatch adds its own timestamps
	logger.SetOutput(os.Stderr)
	logger.SetFlags(log.Lshortfile)

	// Load .env file if it exists (optional, local runs only)
	_ = godotenv.Load()

	logger.InitFromEnv()
	cfg := config.Load()

	logger.Infof("[Lambda] Cold start: serving s3://%s/%s (storage driver: %s)", handler.Bucket, handler.Key, cfg.StorageDriver)

	stor, err := storage.New(context.Background(), cfg)
	if err != nil {
		logger.Fatalf("[Lambda] Failed to initialize storage: %v", err)
	}

	todoHandler := handler.NewTodoHandler(stor)
	lambda.Start(todoHandler.Handle)
}
