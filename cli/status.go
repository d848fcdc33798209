package main

import (
	"fmt"

	"github.com/ewstools/ms43patch/mspatch"
	"github.com/fatih/color"
)

type StatusCmd struct {
	File string `arg name:"file" help:"Firmware image to check."`
}

func (s *StatusCmd) Run(c *Context) error {
	img, err := loadImageFile(s.File)
	if err != nil {
		return err
	}

	set, err := resolveImage(c, img)
	if err != nil {
		return err
	}

	fmt.Printf("Firmware %s, %d patch regions:\n\n", set.DisplayName(), len(set.Patches))

	status, states := c.engine.Status(img, set)
	for i, p := range set.Patches {
		fmt.Printf("%-6s @ 0x%05X (%d bytes): %s\n",
			p.Name, p.Offset, p.Length(), patchStatusText(states[i]))
	}

	fmt.Printf("\nOverall: %s\n", setStatusText(status))
	return nil
}

func patchStatusText(s mspatch.PatchStatus) string {
	switch s {
	case mspatch.StatusPatched:
		return color.GreenString("patched")
	case mspatch.StatusUnpatched:
		return color.YellowString("unpatched")
	default:
		return color.RedString("unknown")
	}
}

func setStatusText(s mspatch.SetStatus) string {
	switch s {
	case mspatch.SetPatched:
		return color.GreenString("fully patched")
	case mspatch.SetUnpatched:
		return color.YellowString("fully unpatched")
	default:
		return color.RedString("indeterminate")
	}
}
