package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-txcodec/internal/service"
)

type varintCommand struct {
	app *app

	Hex  string `long:"hex" description:"decode this hex string as exactly one CompactSize"`
	Args struct {
		Value string `positional-arg-name:"VALUE" description:"unsigned integer to encode"`
	} `positional-args:"yes"`
}

func (c *varintCommand) Execute([]string) error {
	var (
		cs  model.CompactSize
		err error
	)
	switch {
	case c.Hex != "" && c.Args.Value != "":
		return errors.New("VALUE and --hex are mutually exclusive")
	case c.Hex != "":
		cs, err = c.app.decoder.DecodeCompactSize(c.app.ctx, c.Hex)
		if err != nil {
			return err
		}
	case c.Args.Value != "":
		v, err := strconv.ParseUint(c.Args.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("parse value: %w", err)
		}
		cs = service.EncodeCompactSize(v)
	default:
		return errors.New("either VALUE or --hex is required")
	}
	return json.NewEncoder(c.app.out).Encode(cs)
}
