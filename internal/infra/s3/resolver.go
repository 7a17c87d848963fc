package infra_s3

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/ysn7199/yourmovies/core/internal/config"
)

type ClientType string

const (
	ClientTypeRealS3 ClientType = "real"
	ClientTypeMock   ClientType = "mock"
	ClientTypeNone   ClientType = "none"
)

func ClientTypeFrom(cfg config.S3) ClientType {
	switch ClientType(cfg.ClientType) {
	case ClientTypeMock:
		return ClientTypeMock
	case ClientTypeRealS3:
		return ClientTypeRealS3
	default:
		return ClientTypeNone
	}
}

func MustEstablishConn(cfg config.S3) *s3.Client {
	switch ClientTypeFrom(cfg) {
	case ClientTypeMock:
		return createMockClient(cfg.MockEndpoint)
	default:
		return createRealClient()
	}
}

func createRealClient() *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("failed to load aws config: %v", err)
	}

	log.Printf("using real S3 client in region %s", cfg.Region)
	return s3.NewFromConfig(cfg)
}

func createMockClient(endpoint string) *s3.Client {
	log.Printf("using mock S3 client with endpoint %s", endpoint)

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("mock", "mock", "")),
		awsconfig.WithRegion("mock-region"),
	)
	if err != nil {
		log.Fatalf("failed to create mock S3 config: %v", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
}
