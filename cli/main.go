package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ewstools/ms43patch/mspatch"
	"github.com/fatih/color"
)

type Context struct {
	engine  *mspatch.Engine
	variant string
}

var CLI struct {
	LogLevel int    `optional help:"Higher values give more output."`
	Variant  string `optional help:"Hardware variant to use when the firmware version matches more than one."`
	NoColor  bool   `optional help:"Disable colored output."`

	List    ListCmd    `cmd help:"List supported firmware versions and their patch regions."`
	Info    InfoCmd    `cmd help:"Show file and version information for an image."`
	Status  StatusCmd  `cmd help:"Show per-region patch status of an image."`
	Apply   ApplyCmd   `cmd help:"Apply the EWS delete patch to an image."`
	Revert  RevertCmd  `cmd help:"Restore the original bytes of a patched image."`
	Inspect InspectCmd `cmd help:"Hexdump the patch regions of an image."`
}

func main() {
	k, err := kong.New(&CLI)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	if CLI.NoColor {
		color.NoColor = true
	}

	c := &Context{
		variant: CLI.Variant,
		engine: mspatch.New(mspatch.Config{
			LogFunc: func(level int, format string, param ...interface{}) {
				if level > CLI.LogLevel {
					return
				}
				str := fmt.Sprintf(format, param...)
				fmt.Printf("engine(%d): %s\n", level, str)
			},
		}),
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
