package main

import (
	"fmt"
	"os"

	"github.com/kbtools/keymapctl/keymap"
)

type ReadCmd struct {
	Output string `arg:"" name:"output" help:"File to save the keymap to."`
}

func (r *ReadCmd) Run(c *Context) error {
	if !CLI.Force {
		rec := &keymap.Recorder{}
		if _, err := keymap.NewSession(dryRunConfig(c.cfg), rec, rec).ReadKeymap(); err != nil {
			return err
		}

		fmt.Printf("Command to read keymap and save to %s (no action taken, use -f to execute).\n", r.Output)
		printFrames(rec)
		return nil
	}

	request, data, err := openChannels(c)
	if err != nil {
		return err
	}
	defer request.Close()
	defer data.Close()

	fmt.Printf("Reading keymap from keyboard and saving to %s.\n", r.Output)

	blob, err := keymap.NewSession(c.cfg, request, data).ReadKeymap()
	if err != nil {
		return err
	}

	if len(blob) == 0 {
		fmt.Println("Received an empty keymap; the keyboard may still be flushing a previous write.")
	}

	if err := os.WriteFile(r.Output, blob, 0644); err != nil {
		return err
	}

	fmt.Printf("Keymap CRC16: %04x\n", blobChecksum(blob))
	return nil
}
