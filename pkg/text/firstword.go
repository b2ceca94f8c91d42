// Package text implements first-word extraction and a text buffer whose
// views are invalidated when the buffer changes.
package text

// FirstWord returns the prefix of s up to, but not including, the first space.
// If s contains no space, s is returned unchanged. The result shares memory with s.
func FirstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:i]
		}
	}

	return s
}

// FirstWordBytes is FirstWord for byte slices. The result aliases b.
func FirstWordBytes(b []byte) []byte {
	return b[:firstWordEnd(b)]
}

func firstWordEnd(b []byte) int {
	for i, c := range b {
		if c == ' ' {
			return i
		}
	}

	return len(b)
}
