package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sigurn/crc16"

	"github.com/kbtools/keymapctl/keymap"
)

type Context struct {
	cfg keymap.Config
}

var CLI struct {
	VID      int `optional:"" type:"hex" help:"The USB Vendor ID." default:"5ac"`
	PID      int `optional:"" type:"hex" help:"The USB Product ID." default:"24f"`
	LogLevel int `optional:"" help:"Higher values give more output." default:"1"`

	RequestPath string `optional:"" help:"Skip channel resolution and use this request channel path."`
	DataPath    string `optional:"" help:"Skip channel resolution and use this data channel path."`

	Force bool `optional:"" short:"f" help:"Execute the read or write operation. Without this flag the command is only printed."`

	Read    ReadCmd    `cmd:"" help:"Read the keymap from the keyboard and save it to a file."`
	Write   WriteCmd   `cmd:"" help:"Write a keymap file to the keyboard."`
	ListDev ListHIDCmd `cmd:"" name:"list-dev" help:"List HID interfaces of the keyboard."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("keymapctl"),
		kong.Description("Utility to read from or write a keymap to a keyboard."),
		kong.NamedMapper("hex", hexMapper{}))
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, k.Model.Name+": "+err.Error())
		os.Exit(2)
	}

	transportInit()
	defer transportExit()

	c := &Context{cfg: buildConfig()}
	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}

func buildConfig() keymap.Config {
	cfg := keymap.DefaultConfig()
	cfg.VendorID = uint16(CLI.VID)
	cfg.ProductID = uint16(CLI.PID)
	cfg.LogFunc = func(level int, format string, param ...interface{}) {
		if level > CLI.LogLevel {
			return
		}
		fmt.Printf(format+"\n", param...)
	}
	return cfg
}

// dryRunConfig silences engine progress output; a dry run reports nothing
// but the frame itself.
func dryRunConfig(cfg keymap.Config) keymap.Config {
	cfg.LogFunc = nil
	return cfg
}

func printFrames(rec *keymap.Recorder) {
	for _, frame := range rec.Frames {
		fmt.Print(keymap.DumpFrame(frame))
		fmt.Printf("Length: %d bytes\n", len(frame))
	}
}

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

// blobChecksum fingerprints a keymap so dumps can be compared at a glance.
// The blob itself stays opaque.
func blobChecksum(blob []byte) uint16 {
	return crc16.Checksum(blob, crcTable)
}
