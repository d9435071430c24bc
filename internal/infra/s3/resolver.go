package infra_s3

import (
	"context"
	"log"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/blogforge/core/internal/config"
)

type ClientType string

const (
	ClientTypeRealS3 ClientType = "real"
	ClientTypeMock   ClientType = "mock"
)

func MustEstablishConn(cfg config.S3Storage) *s3.Client {
	switch ClientType(cfg.ClientType) {
	case ClientTypeMock:
		return createMockClient()
	case ClientTypeRealS3:
		fallthrough
	default:
		return createRealClient()
	}
}

func createRealClient() *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatal(err)
	}

	return s3.NewFromConfig(cfg)
}

// createMockClient targets a local S3-compatible endpoint so the upload path
// works without AWS credentials.
func createMockClient() *s3.Client {
	endpoint := os.Getenv("S3_MOCK_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:9000"
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion("us-east-1"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("mock", "mock", ""),
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = &endpoint
		o.UsePathStyle = true
	})
}
