package mspatch

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogInvariants(t *testing.T) {
	sets := AllPatchSets()
	require.NotEmpty(t, sets)

	for _, s := range sets {
		require.True(t, strings.HasPrefix(s.Version, "ca"), "version %q", s.Version)
		require.Len(t, s.Patches, 3, "%s", s.DisplayName())

		names := map[string]bool{}
		for _, p := range s.Patches {
			names[p.Name] = true
			assert.Equal(t, len(p.Original), len(p.Patched),
				"%s/%s length mismatch", s.DisplayName(), p.Name)
			assert.NotEmpty(t, p.Original, "%s/%s", s.DisplayName(), p.Name)
			assert.GreaterOrEqual(t, p.Offset, 0)
		}
		assert.True(t, names["Jump"] && names["Code"] && names["DTC"],
			"%s region names: %v", s.DisplayName(), names)

		edits := append([]Patch(nil), s.Patches...)
		sort.Slice(edits, func(i, j int) bool { return edits[i].Offset < edits[j].Offset })
		for i := 1; i < len(edits); i++ {
			assert.GreaterOrEqual(t, edits[i].Offset, edits[i-1].End(),
				"%s: %s overlaps %s", s.DisplayName(), edits[i-1].Name, edits[i].Name)
		}
	}

	require.NoError(t, checkCatalog(sets))
}

func TestSharedVersionVariantsAreInterchangeable(t *testing.T) {
	byVersion := map[string][]PatchSet{}
	for _, s := range AllPatchSets() {
		byVersion[s.Version] = append(byVersion[s.Version], s)
	}

	require.Len(t, byVersion["ca430056"], 2)
	for _, group := range byVersion {
		for _, s := range group[1:] {
			assert.True(t, group[0].EqualPatches(s),
				"variants of %s differ in edits", s.Version)
		}
	}
}

func TestCheckCatalogRejectsDefects(t *testing.T) {
	base := Patch{Name: "Jump", Offset: 0x100, Original: []byte{1, 2}, Patched: []byte{3, 4}}

	t.Run("length mismatch", func(t *testing.T) {
		bad := base
		bad.Patched = []byte{3}
		err := checkCatalog([]PatchSet{{Version: "ca1", Patches: []Patch{bad}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "original is 2 bytes")
	})

	t.Run("overlap", func(t *testing.T) {
		other := Patch{Name: "Code", Offset: 0x101, Original: []byte{5, 6}, Patched: []byte{7, 8}}
		err := checkCatalog([]PatchSet{{Version: "ca1", Patches: []Patch{base, other}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overlap")
	})

	t.Run("empty set", func(t *testing.T) {
		require.Error(t, checkCatalog([]PatchSet{{Version: "ca1"}}))
	})
}

func TestNewPanicsOnDefectiveCatalog(t *testing.T) {
	bad := []PatchSet{{
		Version: "ca1",
		Patches: []Patch{{Name: "Jump", Offset: 0, Original: []byte{1}, Patched: []byte{2, 3}}},
	}}
	require.Panics(t, func() { New(Config{Catalog: bad}) })
}
