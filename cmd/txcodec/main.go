// Command txcodec decodes and encodes legacy transaction prefixes from the shell.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type app struct {
	ctx     context.Context
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	decoder *service.Decoder
}

type globalOptions struct {
	Verbose bool `short:"v" long:"verbose" env:"TXCODEC_VERBOSE" description:"debug logging to stderr"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	a := &app{ctx: ctx, in: in, out: out}
	var opts globalOptions
	parser := flags.NewParser(&opts, flags.Default)

	commands := []struct {
		name, short, long string
		data              flags.Commander
	}{
		{"decode", "Decode one transaction", "Decode a transaction given as hex (or raw bytes with --raw) and print its rendering or JSON view.", &decodeCommand{app: a}},
		{"encode", "Encode a transaction", "Read the JSON view of a transaction and print its hex encoding.", &encodeCommand{app: a}},
		{"batch", "Decode many transactions", "Decode one hex transaction per input line and print one JSON result per line.", &batchCommand{app: a}},
		{"varint", "Encode or decode a CompactSize", "Encode VALUE or strictly decode --hex as a CompactSize integer.", &varintCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return err
		}
	}

	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if command == nil {
			return nil
		}
		logger, err := newLogger(opts.Verbose)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()
		decoder, err := service.NewDecoder(
			bitcoin.NewConverter(bitcoin.NewScriptDecoder()),
			metrics.NewCodec("cli"),
			logger,
			0,
		)
		if err != nil {
			return err
		}
		a.logger = logger
		a.decoder = decoder
		return command.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return cfg.Build()
}
