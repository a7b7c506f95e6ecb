package service

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/codec"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CodecMetrics interface {
		Observe(operation string, err error, size int, started time.Time)
	}
	TransactionConverter interface {
		ToModel(tx codec.Transaction) (model.Transaction, error)
		FromModel(src model.Transaction) (codec.Transaction, error)
	}
)
