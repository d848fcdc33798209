package mspatch

import "strings"

// The version string lives at a fixed offset in every supported MS43 image.
const (
	VersionOffset = 0x70040
	VersionLength = 16

	versionPrefix = "ca"
)

// DetectVersion reads the version window and extracts the longest valid
// token from its start: the "ca" prefix followed by ASCII digits. Trailing
// garbage after the token is ignored.
func DetectVersion(data []byte) (string, error) {
	if len(data) < VersionOffset+VersionLength {
		return "", ErrorImageTooSmall
	}

	window := data[VersionOffset : VersionOffset+VersionLength]
	token := make([]byte, 0, VersionLength)
	for _, b := range window {
		if b == 0 {
			break
		}
		if b < 0x20 || b > 0x7e {
			break
		}
		token = append(token, b)
	}

	t := string(token)
	if !strings.HasPrefix(t, versionPrefix) {
		return "", ErrorIdentityNotFound
	}

	digits := 0
	for _, r := range t[len(versionPrefix):] {
		if r < '0' || r > '9' {
			break
		}
		digits++
	}
	if digits == 0 {
		return "", ErrorIdentityNotFound
	}

	return t[:len(versionPrefix)+digits], nil
}
