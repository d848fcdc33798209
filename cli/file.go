package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ewstools/ms43patch/mspatch"
)

func loadImageFile(path string) (*mspatch.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return mspatch.LoadImage(data, path), nil
}

// resolveImage selects the patch set for an image, honoring --variant when
// resolution is ambiguous.
func resolveImage(c *Context, img *mspatch.Image) (*mspatch.PatchSet, error) {
	if c.variant != "" {
		return c.engine.ResolveVariant(img, c.variant)
	}

	set, err := c.engine.Resolve(img)
	var ambiguous *mspatch.AmbiguousVariantError
	if errors.As(err, &ambiguous) {
		return nil, fmt.Errorf("%w (pass --variant to choose one)", err)
	}
	return set, err
}

// saveImage writes the modified buffer back out. In-place writes keep a
// <path>.original copy of the previous file content, unless one already
// exists or backups were disabled.
func saveImage(img *mspatch.Image, output string, backup bool) error {
	if output == "" {
		output = img.Path()
	}

	if backup && output == img.Path() {
		backupPath := output + ".original"
		if _, err := os.Stat(backupPath); errors.Is(err, os.ErrNotExist) {
			prev, err := os.ReadFile(output)
			if err != nil {
				return err
			}
			if err := os.WriteFile(backupPath, prev, 0644); err != nil {
				return err
			}
			fmt.Printf("Saved backup to %s.\n", backupPath)
		}
	}

	if err := os.WriteFile(output, img.Bytes(), 0644); err != nil {
		return err
	}

	fmt.Printf("Wrote %d bytes to %s.\n", img.Len(), output)
	return nil
}
