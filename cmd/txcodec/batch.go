package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/pkg/batcher"
	"go.uber.org/zap"
)

// Lines longer than this cannot hold a transaction worth decoding here.
const maxLineBytes = 8 << 20

type batchCommand struct {
	app *app

	Chunk     int `long:"chunk" default:"1024" description:"lines decoded per batch"`
	FlushSize int `long:"flush-size" default:"64" description:"results written per flush"`
	RPS       int `long:"rps" default:"1000" description:"maximum flushes per second"`
}

func (c *batchCommand) Execute([]string) error {
	ctx := c.app.ctx
	enc := json.NewEncoder(c.app.out)
	out := batcher.New(c.app.logger.Named("batch"), func(_ context.Context, results []service.BatchResult) error {
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}, batcher.Config{FlushSize: c.FlushSize, FlushInterval: 100 * time.Millisecond, RPS: c.RPS})
	out.Start(ctx)

	total, failed, err := c.decodeLines(ctx, out)
	if stopErr := out.Stop(); stopErr != nil && err == nil {
		err = fmt.Errorf("write results: %w", stopErr)
	}
	if err != nil {
		return err
	}

	c.app.logger.Info("batch finished", zap.Int("items", total), zap.Int("failed", failed))
	if failed > 0 {
		return fmt.Errorf("%d of %d transactions failed to decode", failed, total)
	}
	return nil
}

func (c *batchCommand) decodeLines(ctx context.Context, out *batcher.Batcher[service.BatchResult]) (total, failed int, err error) {
	chunk := c.Chunk
	if chunk < 1 {
		chunk = 1
	}

	scanner := bufio.NewScanner(c.app.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lines := make([]string, 0, chunk)

	flush := func() error {
		if len(lines) == 0 {
			return nil
		}
		results, err := c.app.decoder.DecodeBatch(ctx, lines)
		if err != nil {
			return err
		}
		for _, r := range results {
			r.Index += total
			if r.Error != "" {
				failed++
			}
			if err := out.Add(ctx, r); err != nil {
				return err
			}
		}
		total += len(lines)
		lines = lines[:0]
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) >= chunk {
			if err := flush(); err != nil {
				return total, failed, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return total, failed, fmt.Errorf("read input: %w", err)
	}
	return total, failed, flush()
}
