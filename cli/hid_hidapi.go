//go:build !purehid

package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/inancgumus/screen"
	"github.com/sstallion/go-hid"

	"github.com/kbtools/keymapctl/hidio"
	"github.com/kbtools/keymapctl/keymap"
)

func transportInit() {
	hid.Init()
}

func transportExit() {
	hid.Exit()
}

func enumerateDescriptors(vid, pid uint16) ([]keymap.Descriptor, error) {
	var devs []keymap.Descriptor
	err := hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		devs = append(devs, descriptor(info))
		return nil
	})
	return devs, err
}

func descriptor(info *hid.DeviceInfo) keymap.Descriptor {
	return keymap.Descriptor{
		Path:         info.Path,
		InterfaceNbr: info.InterfaceNbr,
		Usage:        info.Usage,
		UsagePage:    info.UsagePage,
		VendorID:     info.VendorID,
		ProductID:    info.ProductID,
	}
}

// openChannels resolves the request and data channels and opens both. The
// --request-path and --data-path flags bypass resolution for hosts that
// label the collections differently.
func openChannels(c *Context) (request, data hidio.Device, err error) {
	requestPath := CLI.RequestPath
	dataPath := CLI.DataPath

	if requestPath == "" || dataPath == "" {
		sel, err := keymap.Resolve(enumerateDescriptors, c.cfg)
		if err != nil {
			return nil, nil, err
		}
		if requestPath == "" {
			requestPath = sel.RequestPath
		}
		if dataPath == "" {
			dataPath = sel.DataPath
		}
	}

	request, err = hidio.Open(requestPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open request channel %s: %w", requestPath, err)
	}

	data, err = hidio.Open(dataPath)
	if err != nil {
		request.Close()
		return nil, nil, fmt.Errorf("open data channel %s: %w", dataPath, err)
	}

	return request, data, nil
}

type ListHIDCmd struct {
	Watch bool `optional:"" help:"Clear the screen and refresh the list every second."`
}

func (l *ListHIDCmd) Run(c *Context) error {
	for {
		if l.Watch {
			screen.Clear()
			screen.MoveTopLeft()
		}

		if err := l.list(c); err != nil {
			return err
		}

		if !l.Watch {
			return nil
		}
		time.Sleep(time.Second)
	}
}

func (l *ListHIDCmd) list(c *Context) error {
	return hid.Enumerate(c.cfg.VendorID, c.cfg.ProductID, func(info *hid.DeviceInfo) error {
		fmt.Printf("%s: ID %04x:%04x %s %s\n",
			info.Path, info.VendorID, info.ProductID, info.MfrStr, info.ProductStr)
		fmt.Println("Device Information:")
		fmt.Printf("\tPath         %s\n", info.Path)
		fmt.Printf("\tVendorID     %04x\n", info.VendorID)
		fmt.Printf("\tProductID    %04x\n", info.ProductID)
		fmt.Printf("\tSerialNbr    %s\n", info.SerialNbr)
		fmt.Printf("\tMfrStr       %s\n", info.MfrStr)
		fmt.Printf("\tProductStr   %s\n", info.ProductStr)
		fmt.Printf("\tUsagePage    %#x\n", info.UsagePage)
		fmt.Printf("\tUsage        %#x\n", info.Usage)
		fmt.Printf("\tInterfaceNbr %d\n", info.InterfaceNbr)

		switch c.cfg.ChannelKind(descriptor(info)) {
		case keymap.ChannelRequest:
			color.New(color.FgGreen).Println("\t-> request channel")
		case keymap.ChannelData:
			color.New(color.FgCyan).Println("\t-> data channel")
		}
		fmt.Println()

		return nil
	})
}
