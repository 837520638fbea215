package s3

import (
	"studio/config"
	"studio/infras/otel"
)

type ObjectAPI = objectAPI

func NewWithClient(client ObjectAPI, config *config.Config, otel otel.Otel) S3 {
	return newWithClient(client, config, otel)
}
