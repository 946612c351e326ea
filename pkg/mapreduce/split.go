package mapreduce

import "unicode/utf8"

// Split cuts text into at most n contiguous shards. Cuts are moved forward to
// the next separator so that no token spans two shards.
func Split(text string, n int) []string {
	if n <= 1 || len(text) == 0 {
		return []string{text}
	}

	shards := make([]string, 0, n)
	start := 0
	for i := 1; i < n && start < len(text); i++ {
		cut := max(start, len(text)*i/n)
		for cut < len(text) && !utf8.RuneStart(text[cut]) {
			cut++
		}
		for cut < len(text) {
			r, size := utf8.DecodeRuneInString(text[cut:])
			if !isWordRune(r) {
				break
			}
			cut += size
		}
		if cut > start {
			shards = append(shards, text[start:cut])
			start = cut
		}
	}
	if start < len(text) {
		shards = append(shards, text[start:])
	}
	return shards
}
