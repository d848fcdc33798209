package mspatch

import (
	"bytes"
	"fmt"
	"sort"
)

// Patch is a single fixed-length edit: Original and Patched always have the
// same length, so applying or reverting never changes the image size.
type Patch struct {
	Name     string
	Offset   int
	Original []byte
	Patched  []byte
}

func (p Patch) Length() int {
	return len(p.Original)
}

// End returns the offset one past the last byte the edit touches.
func (p Patch) End() int {
	return p.Offset + len(p.Original)
}

// PatchSet is the complete edit list for one firmware version. Some versions
// ship on more than one hardware variant; those get one set per variant.
type PatchSet struct {
	Version         string
	HardwareVariant string
	Patches         []Patch
}

func (s PatchSet) DisplayName() string {
	if s.HardwareVariant != "" {
		return fmt.Sprintf("%s (%s)", s.Version, s.HardwareVariant)
	}
	return s.Version
}

// EqualPatches reports whether two sets perform exactly the same edits.
// Variants with equal edits are interchangeable during resolution.
func (s PatchSet) EqualPatches(o PatchSet) bool {
	if len(s.Patches) != len(o.Patches) {
		return false
	}
	for i, p := range s.Patches {
		q := o.Patches[i]
		if p.Name != q.Name || p.Offset != q.Offset {
			return false
		}
		if !bytes.Equal(p.Original, q.Original) || !bytes.Equal(p.Patched, q.Patched) {
			return false
		}
	}
	return true
}

// AllPatchSets returns the built-in catalog. The returned slice is freshly
// allocated; the byte values themselves are never modified by the engine.
func AllPatchSets() []PatchSet {
	return []PatchSet{
		{
			Version: "ca430037",
			Patches: []Patch{
				{Name: "Jump", Offset: 0x54E8C, Original: []byte{0xDA, 0x0B, 0x5A, 0x1C}, Patched: []byte{0xDA, 0x0D, 0x0C, 0x35}},
				{Name: "Code", Offset: 0x5350C, Original: []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Patched: []byte{0xDA, 0x0B, 0xE6, 0x39, 0x6E, 0x18, 0xDB, 0x00}},
				{Name: "DTC", Offset: 0x7099B, Original: []byte{0x02}, Patched: []byte{0x00}},
			},
		},
		{
			Version:         "ca430056",
			HardwareVariant: "5WK90015",
			Patches: []Patch{
				{Name: "Jump", Offset: 0x57D76, Original: []byte{0xDA, 0x0B, 0x40, 0x20}, Patched: []byte{0xDA, 0x0D, 0xB2, 0x3B}},
				{Name: "Code", Offset: 0x53BB2, Original: []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Patched: []byte{0xDA, 0x0B, 0xB8, 0x3F, 0x9E, 0x19, 0xDB, 0x00}},
				{Name: "DTC", Offset: 0x70A14, Original: []byte{0x02}, Patched: []byte{0x00}},
			},
		},
		{
			Version:         "ca430056",
			HardwareVariant: "5WK90017",
			Patches: []Patch{
				{Name: "Jump", Offset: 0x57D76, Original: []byte{0xDA, 0x0B, 0x40, 0x20}, Patched: []byte{0xDA, 0x0D, 0xB2, 0x3B}},
				{Name: "Code", Offset: 0x53BB2, Original: []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Patched: []byte{0xDA, 0x0B, 0xB8, 0x3F, 0x9E, 0x19, 0xDB, 0x00}},
				{Name: "DTC", Offset: 0x70A14, Original: []byte{0x02}, Patched: []byte{0x00}},
			},
		},
		{
			Version: "ca430066",
			Patches: []Patch{
				{Name: "Jump", Offset: 0x600D8, Original: []byte{0xDA, 0x0A, 0x64, 0xDD}, Patched: []byte{0xDA, 0x0D, 0xF8, 0x3B}},
				{Name: "Code", Offset: 0x53BF8, Original: []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Patched: []byte{0xDA, 0x0A, 0xDC, 0xFC, 0x0E, 0x1A, 0xDB, 0x00}},
				{Name: "DTC", Offset: 0x70A77, Original: []byte{0x02}, Patched: []byte{0x00}},
			},
		},
		{
			Version: "ca430069",
			Patches: []Patch{
				{Name: "Jump", Offset: 0x600D8, Original: []byte{0xDA, 0x0A, 0x6C, 0xDD}, Patched: []byte{0xDA, 0x0D, 0xF8, 0x3B}},
				{Name: "Code", Offset: 0x53BF8, Original: []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, Patched: []byte{0xDA, 0x0A, 0xE4, 0xFC, 0x0E, 0x1A, 0xDB, 0x00}},
				{Name: "DTC", Offset: 0x70A6E, Original: []byte{0x02}, Patched: []byte{0x00}},
			},
		},
	}
}

// checkCatalog verifies the structural invariants every catalog must hold.
// A violation is a defect in the catalog data, not a runtime condition, so
// Engine construction panics on it.
func checkCatalog(sets []PatchSet) error {
	for _, s := range sets {
		if len(s.Patches) == 0 {
			return fmt.Errorf("patch set %s has no edits", s.DisplayName())
		}
		for _, p := range s.Patches {
			if p.Offset < 0 {
				return fmt.Errorf("%s/%s: negative offset", s.DisplayName(), p.Name)
			}
			if len(p.Original) == 0 {
				return fmt.Errorf("%s/%s: empty edit", s.DisplayName(), p.Name)
			}
			if len(p.Original) != len(p.Patched) {
				return fmt.Errorf("%s/%s: original is %d bytes but replacement is %d",
					s.DisplayName(), p.Name, len(p.Original), len(p.Patched))
			}
		}

		edits := append([]Patch(nil), s.Patches...)
		sort.Slice(edits, func(i, j int) bool { return edits[i].Offset < edits[j].Offset })
		for i := 1; i < len(edits); i++ {
			if edits[i].Offset < edits[i-1].End() {
				return fmt.Errorf("%s: edits %s and %s overlap",
					s.DisplayName(), edits[i-1].Name, edits[i].Name)
			}
		}
	}
	return nil
}
