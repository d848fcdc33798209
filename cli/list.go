package main

import "fmt"

type ListCmd struct {
}

func (l *ListCmd) Run(c *Context) error {
	fmt.Printf("Version  | Variant  | Region | Offset  | Length\n")

	for _, s := range c.engine.PatchSets() {
		for _, p := range s.Patches {
			fmt.Printf("%-9s| %-9s| %-7s| 0x%05X | %6d\n",
				s.Version, s.HardwareVariant, p.Name, p.Offset, p.Length())
		}
	}
	return nil
}
