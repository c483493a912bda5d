package main

import (
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

type hexMapper struct{}

func (hexMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("hex", &value); err != nil {
		return err
	}
	i, err := strconv.ParseInt(value, 16, 64)
	if err != nil {
		return err
	}
	target.SetInt(i)
	return nil
}
