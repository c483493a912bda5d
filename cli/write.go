package main

import (
	"fmt"
	"os"

	"github.com/kbtools/keymapctl/keymap"
)

type WriteCmd struct {
	Input string `arg:"" name:"input" help:"File containing the keymap to write."`
}

func (w *WriteCmd) Run(c *Context) error {
	blob, err := os.ReadFile(w.Input)
	if err != nil {
		return err
	}

	if !CLI.Force {
		rec := &keymap.Recorder{}
		if _, err := keymap.NewSession(dryRunConfig(c.cfg), rec, rec).WriteKeymap(blob); err != nil {
			return err
		}

		fmt.Printf("Command to write keymap from %s to keyboard (no action taken, use -f to execute).\n", w.Input)
		printFrames(rec)
		return nil
	}

	request, data, err := openChannels(c)
	if err != nil {
		return err
	}
	defer request.Close()
	defer data.Close()

	fmt.Printf("Writing keymap from %s to keyboard.\n", w.Input)

	if _, err := keymap.NewSession(c.cfg, request, data).WriteKeymap(blob); err != nil {
		return err
	}

	fmt.Printf("Keymap CRC16: %04x\n", blobChecksum(blob))
	return nil
}
