package mspatch

import "strings"

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	// Catalog overrides the built-in patch sets, mainly for tests.
	Catalog []PatchSet

	LogFunc LogFunc
}

// Engine resolves firmware images against the catalog and performs
// validated apply/revert over their buffers. It holds no per-image state:
// every status is recomputed from the buffer when asked for.
type Engine struct {
	catalog []PatchSet
	config  Config
}

func New(config Config) *Engine {
	catalog := config.Catalog
	if catalog == nil {
		catalog = AllPatchSets()
	}
	if err := checkCatalog(catalog); err != nil {
		panic("mspatch: defective patch catalog: " + err.Error())
	}

	return &Engine{
		catalog: catalog,
		config:  config,
	}
}

func (e *Engine) log(level int, format string, param ...interface{}) {
	if e.config.LogFunc != nil {
		e.config.LogFunc(level, format, param...)
	}
}

// PatchSets returns the catalog the engine was built with.
func (e *Engine) PatchSets() []PatchSet {
	return e.catalog
}

// Resolve detects the firmware version of an image and selects the matching
// patch set. When several hardware variants share the version the first one
// is returned if they all perform the same edits; otherwise resolution
// fails with AmbiguousVariantError and the caller has to pick a variant
// (see ResolveVariant).
func (e *Engine) Resolve(img *Image) (*PatchSet, error) {
	candidates, token, err := e.candidates(img)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates[1:] {
		if !candidates[0].EqualPatches(*c) {
			var sets []PatchSet
			for _, m := range candidates {
				sets = append(sets, *m)
			}
			return nil, &AmbiguousVariantError{
				Version:    candidates[0].Version,
				Candidates: sets,
			}
		}
	}

	e.log(1, "Detected firmware %s (token %q)", candidates[0].DisplayName(), token)
	return candidates[0], nil
}

// ResolveVariant resolves like Resolve but picks the candidate with the
// given hardware variant name, for callers that obtained the choice from
// the user after an AmbiguousVariantError.
func (e *Engine) ResolveVariant(img *Image, variant string) (*PatchSet, error) {
	candidates, _, err := e.candidates(img)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		if c.HardwareVariant == variant {
			e.log(1, "Detected firmware %s (manual variant selection)", c.DisplayName())
			return c, nil
		}
	}

	var sets []PatchSet
	for _, c := range candidates {
		sets = append(sets, *c)
	}
	return nil, &UnknownVariantError{
		Version:    candidates[0].Version,
		Variant:    variant,
		Candidates: sets,
	}
}

func (e *Engine) candidates(img *Image) ([]*PatchSet, string, error) {
	token, err := DetectVersion(img.Bytes())
	if err != nil {
		return nil, "", err
	}

	var candidates []*PatchSet
	for i := range e.catalog {
		if strings.HasPrefix(token, e.catalog[i].Version) {
			candidates = append(candidates, &e.catalog[i])
		}
	}
	if len(candidates) == 0 {
		return nil, token, &UnsupportedVersionError{Token: token}
	}
	return candidates, token, nil
}

// Status recomputes the aggregate and per-region state from the buffer.
func (e *Engine) Status(img *Image, set *PatchSet) (SetStatus, []PatchStatus) {
	return CheckSet(img.Bytes(), set)
}

// Apply validates that every region still holds its original bytes and only
// then writes all replacements. On any validation failure the buffer is
// left untouched; validation runs here even if the caller already displayed
// a status, since the buffer may have changed in between.
func (e *Engine) Apply(img *Image, set *PatchSet) error {
	status, states := CheckSet(img.Bytes(), set)
	if status != SetUnpatched {
		return &NotUnpatchedError{
			Status:     status,
			Mismatches: collectMismatches(img, set, states, StatusUnpatched),
		}
	}

	data := img.Bytes()
	for _, p := range set.Patches {
		copy(data[p.Offset:p.End()], p.Patched)
		e.log(1, "Applied %s patch at 0x%X", p.Name, p.Offset)
	}
	return nil
}

// Revert is the inverse of Apply: every region must hold its replacement
// bytes, then all originals are written back.
func (e *Engine) Revert(img *Image, set *PatchSet) error {
	status, states := CheckSet(img.Bytes(), set)
	if status != SetPatched {
		return &NotPatchedError{
			Status:     status,
			Mismatches: collectMismatches(img, set, states, StatusPatched),
		}
	}

	data := img.Bytes()
	for _, p := range set.Patches {
		copy(data[p.Offset:p.End()], p.Original)
		e.log(1, "Reverted %s patch at 0x%X", p.Name, p.Offset)
	}
	return nil
}

// collectMismatches reports every region that is not in the wanted state,
// with the bytes actually found there.
func collectMismatches(img *Image, set *PatchSet, states []PatchStatus, want PatchStatus) []Mismatch {
	var out []Mismatch
	for i, p := range set.Patches {
		if states[i] == want {
			continue
		}

		expected := p.Original
		if want == StatusPatched {
			expected = p.Patched
		}
		_, current, _ := img.RegionBytes(p)
		out = append(out, Mismatch{
			Name:     p.Name,
			Offset:   p.Offset,
			Expected: append([]byte(nil), expected...),
			Found:    current,
		})
	}
	return out
}
