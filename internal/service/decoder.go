// Package service wires the codec into the operations exposed by the binaries.
package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/codec"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/workerpool"
	"go.uber.org/zap"
)

const defaultBatchWorkers = 4

// BatchResult is the outcome of decoding one batch item.
type BatchResult struct {
	Index       int                `json:"index"`
	Transaction *model.Transaction `json:"transaction,omitempty"`
	Error       string             `json:"error,omitempty"`
	ErrorKind   codec.ErrorKind    `json:"error_kind,omitempty"`
}

// Decoder decodes and encodes whole transactions on behalf of a transport.
type Decoder struct {
	logger       *zap.Logger
	metrics      CodecMetrics
	converter    TransactionConverter
	batchWorkers int
}

// NewDecoder builds a Decoder with dependencies.
func NewDecoder(converter TransactionConverter, metrics CodecMetrics, logger *zap.Logger, batchWorkers int) (*Decoder, error) {
	if converter == nil {
		return nil, errors.New("decoder converter is required")
	}
	if metrics == nil {
		return nil, errors.New("decoder metrics is required")
	}
	if batchWorkers < 1 {
		batchWorkers = defaultBatchWorkers
	}
	return &Decoder{
		logger:       logger.Named("decoder"),
		metrics:      metrics,
		converter:    converter,
		batchWorkers: batchWorkers,
	}, nil
}

// Decode decodes raw, which must hold exactly one transaction, into its view.
func (d *Decoder) Decode(ctx context.Context, raw []byte) (tx model.Transaction, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("decode", err, len(raw), started)
	}()
	if err = ctx.Err(); err != nil {
		return model.Transaction{}, err
	}

	decoded, err := decodeExact(raw)
	if err != nil {
		d.logger.Warn("decode transaction failed", zap.Int("bytes", len(raw)), zap.Error(err))
		return model.Transaction{}, err
	}
	tx, err = d.converter.ToModel(decoded)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("convert transaction: %w", err)
	}
	d.logger.Debug("transaction decoded", zap.String("hash", tx.Hash), zap.Uint32("inputs", tx.InputCount))
	return tx, nil
}

// DecodeHex decodes the hex form of a transaction. Surrounding whitespace is ignored.
func (d *Decoder) DecodeHex(ctx context.Context, s string) (model.Transaction, error) {
	raw, err := ParseHex(s)
	if err != nil {
		d.metrics.Observe("decode", err, 0, time.Now())
		return model.Transaction{}, err
	}
	return d.Decode(ctx, raw)
}

// Render decodes raw and returns the diagnostic text report.
func (d *Decoder) Render(ctx context.Context, raw []byte) (text string, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("render", err, len(raw), started)
	}()
	if err = ctx.Err(); err != nil {
		return "", err
	}

	decoded, err := decodeExact(raw)
	if err != nil {
		return "", err
	}
	return decoded.String(), nil
}

// DecodeBatch decodes independent hex items concurrently. Results keep the
// order of items; a malformed item only fails its own result.
func (d *Decoder) DecodeBatch(ctx context.Context, items []string) ([]BatchResult, error) {
	type indexed struct {
		index int
		hex   string
	}
	work := make([]indexed, len(items))
	for i, item := range items {
		work[i] = indexed{index: i, hex: item}
	}

	results, err := workerpool.Map(ctx, d.batchWorkers, work, func(ctx context.Context, it indexed) BatchResult {
		res := BatchResult{Index: it.index}
		tx, err := d.DecodeHex(ctx, it.hex)
		if err != nil {
			res.Error = err.Error()
			if kind, ok := codec.KindOf(err); ok {
				res.ErrorKind = kind
			}
			return res
		}
		res.Transaction = &tx
		return res
	})
	if err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	d.logger.Debug("batch decoded", zap.Int("items", len(items)))
	return results, nil
}

// Encode serializes the transaction described by tx.
func (d *Decoder) Encode(ctx context.Context, tx model.Transaction) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("encode", err, len(raw), started)
	}()
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	built, err := d.converter.FromModel(tx)
	if err != nil {
		d.logger.Warn("encode transaction failed", zap.Error(err))
		return nil, err
	}
	return built.Encode(), nil
}

// DecodeCompactSize parses a hex string holding exactly one CompactSize.
func (d *Decoder) DecodeCompactSize(ctx context.Context, s string) (cs model.CompactSize, err error) {
	started := time.Now()
	defer func() {
		d.metrics.Observe("compactsize", err, cs.Size, started)
	}()
	if err = ctx.Err(); err != nil {
		return model.CompactSize{}, err
	}

	raw, err := ParseHex(s)
	if err != nil {
		return model.CompactSize{}, err
	}
	v, err := codec.ParseCompactSize(raw)
	if err != nil {
		return model.CompactSize{}, err
	}
	return model.CompactSize{Value: uint64(v), Size: len(raw), Hex: hex.EncodeToString(raw)}, nil
}

// EncodeCompactSize returns the canonical encoding of v.
func EncodeCompactSize(v uint64) model.CompactSize {
	raw := codec.CompactSize(v).Encode()
	return model.CompactSize{Value: v, Size: len(raw), Hex: hex.EncodeToString(raw)}
}

// ParseHex decodes s after trimming whitespace; malformed hex is reported as
// an InvalidFormat codec error.
func ParseHex(s string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, codec.NewError(codec.InvalidFormat, "hex: "+err.Error())
	}
	return raw, nil
}

func decodeExact(raw []byte) (codec.Transaction, error) {
	tx, n, err := codec.DecodeTransaction(raw)
	if err != nil {
		return codec.Transaction{}, err
	}
	if n != len(raw) {
		return codec.Transaction{}, codec.NewError(codec.InvalidFormat,
			fmt.Sprintf("transaction: %d trailing bytes after lock time", len(raw)-n))
	}
	return tx, nil
}
