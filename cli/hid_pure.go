//go:build purehid

package main

import (
	"errors"
	"fmt"

	"github.com/kbtools/keymapctl/hidio"
)

func transportInit() {}

func transportExit() {}

// The hidraw backend cannot enumerate, so both channel paths must be given
// explicitly.
func openChannels(c *Context) (request, data hidio.Device, err error) {
	if CLI.RequestPath == "" || CLI.DataPath == "" {
		return nil, nil, errors.New("request-path and data-path must be specified when using pure GO HID")
	}

	request, err = hidio.Open(CLI.RequestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open request channel %s: %w", CLI.RequestPath, err)
	}

	data, err = hidio.Open(CLI.DataPath)
	if err != nil {
		request.Close()
		return nil, nil, fmt.Errorf("open data channel %s: %w", CLI.DataPath, err)
	}

	return request, data, nil
}

type ListHIDCmd struct {
}

func (l *ListHIDCmd) Run(c *Context) error {
	return errors.New("this command is not supported using pure GO HID")
}
