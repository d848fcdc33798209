package mspatch

import "bytes"

// PatchStatus is the state of a single edit region.
type PatchStatus int

const (
	StatusUnknown PatchStatus = iota
	StatusUnpatched
	StatusPatched
)

func (s PatchStatus) String() string {
	switch s {
	case StatusUnpatched:
		return "unpatched"
	case StatusPatched:
		return "patched"
	default:
		return "unknown"
	}
}

// SetStatus is the state of a whole patch set. Only Unpatched permits Apply
// and only Patched permits Revert; everything else is Indeterminate.
type SetStatus int

const (
	SetIndeterminate SetStatus = iota
	SetUnpatched
	SetPatched
)

func (s SetStatus) String() string {
	switch s {
	case SetUnpatched:
		return "unpatched"
	case SetPatched:
		return "patched"
	default:
		return "indeterminate"
	}
}

// regionEqual compares the bytes at offset against want. A region extending
// past the end of the image never matches.
func regionEqual(data []byte, offset int, want []byte) bool {
	end := offset + len(want)
	if offset < 0 || end > len(data) {
		return false
	}
	return bytes.Equal(data[offset:end], want)
}

// CheckPatch classifies one region. Truncated or foreign files come back as
// StatusUnknown rather than an out-of-range access.
func CheckPatch(data []byte, p Patch) PatchStatus {
	if regionEqual(data, p.Offset, p.Patched) {
		return StatusPatched
	}
	if regionEqual(data, p.Offset, p.Original) {
		return StatusUnpatched
	}
	return StatusUnknown
}

// CheckSet classifies every region of a set and reduces to the aggregate
// state. Recomputed from the buffer on every call, never cached.
func CheckSet(data []byte, set *PatchSet) (SetStatus, []PatchStatus) {
	states := make([]PatchStatus, len(set.Patches))
	allUnpatched := true
	allPatched := true
	for i, p := range set.Patches {
		states[i] = CheckPatch(data, p)
		if states[i] != StatusUnpatched {
			allUnpatched = false
		}
		if states[i] != StatusPatched {
			allPatched = false
		}
	}

	switch {
	case allUnpatched:
		return SetUnpatched, states
	case allPatched:
		return SetPatched, states
	default:
		return SetIndeterminate, states
	}
}
