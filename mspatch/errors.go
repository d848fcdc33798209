package mspatch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrorImageTooSmall    = errors.New("Image is too small to contain a version string")
	ErrorIdentityNotFound = errors.New("Could not identify a firmware version string")
)

// Mismatch describes one region whose content did not match the expected
// value. Found is clamped to the image length for truncated files.
type Mismatch struct {
	Name     string
	Offset   int
	Expected []byte
	Found    []byte
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s at 0x%X: expected [% 02X], found [% 02X]",
		m.Name, m.Offset, m.Expected, m.Found)
}

// UnsupportedVersionError means a well-formed version token was read but no
// catalog entry covers it.
type UnsupportedVersionError struct {
	Token string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported firmware version %q", e.Token)
}

// AmbiguousVariantError means several hardware variants share the detected
// version but perform different edits, so the caller must choose one.
type AmbiguousVariantError struct {
	Version    string
	Candidates []PatchSet
}

func (e *AmbiguousVariantError) Error() string {
	var names []string
	for _, c := range e.Candidates {
		names = append(names, c.HardwareVariant)
	}
	return fmt.Sprintf("firmware %s matches multiple hardware variants (%s), manual selection required",
		e.Version, strings.Join(names, ", "))
}

// UnknownVariantError means a manually selected hardware variant does not
// exist for the detected firmware version.
type UnknownVariantError struct {
	Version    string
	Variant    string
	Candidates []PatchSet
}

func (e *UnknownVariantError) Error() string {
	var names []string
	for _, c := range e.Candidates {
		if c.HardwareVariant != "" {
			names = append(names, c.HardwareVariant)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("firmware %s has no hardware variants, none can be selected", e.Version)
	}
	return fmt.Sprintf("firmware %s has no hardware variant %q (available: %s)",
		e.Version, e.Variant, strings.Join(names, ", "))
}

// NotUnpatchedError means Apply refused to run because the image was not in
// the fully unpatched state. The buffer was not modified.
type NotUnpatchedError struct {
	Status     SetStatus
	Mismatches []Mismatch
}

func (e *NotUnpatchedError) Error() string {
	return fmt.Sprintf("image is not in the unpatched state (current state: %s): %s",
		e.Status, joinMismatches(e.Mismatches))
}

// NotPatchedError means Revert refused to run because the image was not in
// the fully patched state. The buffer was not modified.
type NotPatchedError struct {
	Status     SetStatus
	Mismatches []Mismatch
}

func (e *NotPatchedError) Error() string {
	return fmt.Sprintf("image is not in the patched state (current state: %s): %s",
		e.Status, joinMismatches(e.Mismatches))
}

func joinMismatches(mismatches []Mismatch) string {
	var parts []string
	for _, m := range mismatches {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, "; ")
}
