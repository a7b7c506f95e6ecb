package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionService interface {
		DecodeHex(ctx context.Context, s string) (model.Transaction, error)
		Render(ctx context.Context, raw []byte) (string, error)
		DecodeBatch(ctx context.Context, items []string) ([]service.BatchResult, error)
		Encode(ctx context.Context, tx model.Transaction) ([]byte, error)
		DecodeCompactSize(ctx context.Context, s string) (model.CompactSize, error)
	}
	RequestMetrics interface {
		ObserveRequest(route string, code int, started time.Time)
	}
)
