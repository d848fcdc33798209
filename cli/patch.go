package main

import "fmt"

type ApplyCmd struct {
	File     string `arg name:"file" help:"Firmware image to patch."`
	Output   string `optional help:"Write the result here instead of modifying the file in place."`
	NoBackup bool   `optional help:"Do not keep a .original copy when patching in place."`
}

func (a *ApplyCmd) Run(c *Context) error {
	img, err := loadImageFile(a.File)
	if err != nil {
		return err
	}

	set, err := resolveImage(c, img)
	if err != nil {
		return err
	}

	if err := c.engine.Apply(img, set); err != nil {
		return err
	}
	fmt.Printf("Applied %s EWS patch (%d regions).\n", set.DisplayName(), len(set.Patches))

	return saveImage(img, a.Output, !a.NoBackup)
}

type RevertCmd struct {
	File     string `arg name:"file" help:"Firmware image to revert."`
	Output   string `optional help:"Write the result here instead of modifying the file in place."`
	NoBackup bool   `optional help:"Do not keep a .original copy when reverting in place."`
}

func (r *RevertCmd) Run(c *Context) error {
	img, err := loadImageFile(r.File)
	if err != nil {
		return err
	}

	set, err := resolveImage(c, img)
	if err != nil {
		return err
	}

	if err := c.engine.Revert(img, set); err != nil {
		return err
	}
	fmt.Printf("Reverted %s EWS patch (%d regions).\n", set.DisplayName(), len(set.Patches))

	return saveImage(img, r.Output, !r.NoBackup)
}
