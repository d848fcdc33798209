package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/ewstools/ms43patch/mspatch"
	"github.com/inancgumus/screen"
)

type InspectCmd struct {
	File string `arg name:"file" help:"Firmware image to inspect."`
	Name string `arg optional name:"region" help:"Region name (Jump, Code or DTC), omit for all."`

	Context int  `optional default:"16" help:"Bytes of surrounding context to show."`
	Watch   bool `optional help:"Re-read the file periodically and mark bytes that changed."`
}

func (i *InspectCmd) Run(c *Context) error {
	if i.Context < 0 {
		i.Context = 0
	}

	prev := map[string][]byte{}
	for {
		startTime := time.Now()

		img, err := loadImageFile(i.File)
		if err != nil {
			return err
		}

		set, err := resolveImage(c, img)
		if err != nil {
			return err
		}

		var regions []mspatch.Patch
		for _, p := range set.Patches {
			if i.Name == "" || strings.EqualFold(p.Name, i.Name) {
				regions = append(regions, p)
			}
		}
		if len(regions) == 0 {
			return fmt.Errorf("firmware %s has no region named %q", set.DisplayName(), i.Name)
		}

		if i.Watch {
			screen.Clear()
			screen.MoveTopLeft()
			fmt.Printf("%s  (%s)\n\n", i.File, time.Now().Format("15:04:05"))
		}

		for _, p := range regions {
			i.printRegion(img, p, prev[p.Name])

			_, current, _ := img.RegionBytes(p)
			prev[p.Name] = current
		}

		if !i.Watch {
			break
		}
		d := time.Now().Sub(startTime)
		td := 200 * time.Millisecond
		if d < td {
			time.Sleep(td - d)
		}
	}

	return nil
}

// printRegion shows one region with surrounding context, plus the expected
// original and replacement values. In the context dump the marked bytes are
// those inside the region that differ from the expected original, or, when
// a previous read is given, those that changed since it.
func (i *InspectCmd) printRegion(img *mspatch.Image, p mspatch.Patch, prev []byte) {
	original, current, patched := img.RegionBytes(p)

	// The region may lie partially or entirely past the end of a truncated
	// image; the window is clamped so it never can go out of range.
	start := p.Offset - i.Context
	if start < 0 {
		start = 0
	}
	if start > img.Len() {
		start = img.Len()
	}
	end := p.End() + i.Context
	if end > img.Len() {
		end = img.Len()
	}
	if end < start {
		end = start
	}

	window := img.Bytes()[start:end]
	mark := make([]bool, len(window))
	for n := range current {
		changed := n >= len(original) || current[n] != original[n]
		if prev != nil {
			changed = n >= len(prev) || current[n] != prev[n]
		}
		mark[p.Offset-start+n] = changed
	}

	fmt.Printf("%s @ 0x%05X (%d bytes): %s\n",
		p.Name, p.Offset, p.Length(), patchStatusText(mspatch.CheckPatch(img.Bytes(), p)))
	fmt.Print(hexdump(start, window, mark))

	currentMark := make([]bool, len(current))
	for n := range current {
		currentMark[n] = n >= len(original) || current[n] != original[n]
	}
	fmt.Printf("  original value:  %s\n", hexBytes(original, nil))
	fmt.Printf("  current value:   %s\n", hexBytes(current, currentMark))
	fmt.Printf("  patched value:   %s\n", hexBytes(patched, markDiff(patched, original)))
	fmt.Println()
}

// markDiff marks the positions where a differs from b.
func markDiff(a, b []byte) []bool {
	if bytes.Equal(a, b) {
		return nil
	}
	mark := make([]bool, len(a))
	for i := range a {
		mark[i] = i >= len(b) || a[i] != b[i]
	}
	return mark
}
