package util

// MergeStringMaps sets every key of src into dst, overwriting existing values.
// Keys only present in dst are kept. A nil dst is allocated.
func MergeStringMaps(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for key, val := range src {
		dst[key] = val
	}
	return dst
}
