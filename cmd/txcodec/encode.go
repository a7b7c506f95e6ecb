package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
)

type encodeCommand struct {
	app *app

	File string `long:"file" description:"read the JSON view from a file instead of stdin"`
}

func (c *encodeCommand) Execute([]string) error {
	var r io.Reader = c.app.in
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var tx model.Transaction
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tx); err != nil {
		return fmt.Errorf("parse transaction json: %w", err)
	}

	raw, err := c.app.decoder.Encode(c.app.ctx, tx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.out, hex.EncodeToString(raw))
	return err
}
