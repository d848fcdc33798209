package mspatch

// Image is a firmware image loaded into memory, plus the path it came from
// (empty when the caller did not load it from a file). The engine mutates
// the buffer in place and never retains a reference across calls; writing
// it back out is the caller's job.
type Image struct {
	data []byte
	path string
}

func LoadImage(data []byte, path string) *Image {
	return &Image{data: data, path: path}
}

// Bytes returns the backing buffer, not a copy.
func (img *Image) Bytes() []byte {
	return img.data
}

func (img *Image) Len() int {
	return len(img.data)
}

func (img *Image) Path() string {
	return img.path
}

// RegionBytes returns the expected original bytes, the bytes currently in
// the image, and the replacement bytes for one edit, so a viewer can render
// before/current/after without duplicating offset arithmetic. Current is
// clamped to the image length and may be shorter than the other two.
func (img *Image) RegionBytes(p Patch) (original, current, patched []byte) {
	original = append([]byte(nil), p.Original...)
	patched = append([]byte(nil), p.Patched...)

	if p.Offset >= 0 && p.Offset < len(img.data) {
		end := p.End()
		if end > len(img.data) {
			end = len(img.data)
		}
		current = append([]byte(nil), img.data[p.Offset:end]...)
	}
	return original, current, patched
}
