package assistant

import "strings"

// Inputs above chunkThreshold bytes are split before prompting so a single
// oversized process definition cannot blow the model's context window.
const (
	chunkThreshold = 24000
	chunkSize      = 16000
)

// splitChunks splits code into chunks of at most size bytes, preferring line
// boundaries so XML elements are not cut mid-tag more than necessary. A
// single line longer than size is split hard.
func splitChunks(code string, size int) []string {
	if size <= 0 || len(code) <= size {
		return []string{code}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, line := range strings.SplitAfter(code, "\n") {
		for len(line) > size {
			flush()
			chunks = append(chunks, line[:size])
			line = line[size:]
		}
		if current.Len()+len(line) > size {
			flush()
		}
		current.WriteString(line)
	}
	flush()

	if len(chunks) == 0 {
		chunks = []string{""}
	}
	return chunks
}
