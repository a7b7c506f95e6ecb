package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
)

type decodeCommand struct {
	app *app

	JSON bool   `long:"json" description:"print the JSON view instead of the text rendering"`
	Hex  string `long:"hex" description:"transaction hex"`
	File string `long:"file" description:"read the transaction from a file instead of stdin"`
	Raw  bool   `long:"raw" description:"input is binary rather than hex"`
}

func (c *decodeCommand) Execute([]string) error {
	raw, err := c.input()
	if err != nil {
		return err
	}

	if c.JSON {
		tx, err := c.app.decoder.Decode(c.app.ctx, raw)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(c.app.out)
		enc.SetIndent("", "  ")
		return enc.Encode(tx)
	}

	text, err := c.app.decoder.Render(c.app.ctx, raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.out, text)
	return err
}

func (c *decodeCommand) input() ([]byte, error) {
	if c.Hex != "" && c.File != "" {
		return nil, errors.New("--hex and --file are mutually exclusive")
	}
	if c.Hex != "" {
		return service.ParseHex(c.Hex)
	}

	var (
		data []byte
		err  error
	)
	if c.File != "" {
		data, err = os.ReadFile(c.File)
	} else {
		data, err = io.ReadAll(c.app.in)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if c.Raw {
		return data, nil
	}
	return service.ParseHex(string(data))
}
