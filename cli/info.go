package main

import (
	"errors"
	"fmt"

	"github.com/ewstools/ms43patch/mspatch"
	"github.com/sigurn/crc16"
)

type InfoCmd struct {
	File string `arg name:"file" help:"Firmware image to inspect."`
}

func (i *InfoCmd) Run(c *Context) error {
	img, err := loadImageFile(i.File)
	if err != nil {
		return err
	}

	// Whole-file checksum as an operator aid for comparing dumps. Nothing
	// is ever written back into the image based on it.
	crcTab := crc16.MakeTable(crc16.CRC16_XMODEM)

	fmt.Printf("File:    %s\n", img.Path())
	fmt.Printf("Size:    %d bytes\n", img.Len())
	fmt.Printf("CRC16:   0x%04X (XMODEM)\n", crc16.Checksum(img.Bytes(), crcTab))

	set, err := resolveImage(c, img)
	if err != nil {
		if errors.Is(err, mspatch.ErrorImageTooSmall) || errors.Is(err, mspatch.ErrorIdentityNotFound) {
			fmt.Printf("Version: not detected (%s)\n", err)
			return nil
		}
		return err
	}

	fmt.Printf("Version: %s\n", set.Version)
	variant := set.HardwareVariant
	if variant == "" {
		variant = "n/a"
	}
	fmt.Printf("Variant: %s\n", variant)

	status, _ := c.engine.Status(img, set)
	fmt.Printf("Status:  %s\n", setStatusText(status))
	return nil
}
