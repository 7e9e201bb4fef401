package service

import (
	"regexp"
	"strings"
	"unicode"
)

// Chunking defaults for training documents, measured in runes
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// ChunkText splits text into chunks of at most size runes. Paragraphs are kept whole when they
// fit; each chunk after the first starts with up to overlap runes from the end of the previous one.
func ChunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size-2 {
		overlap = size / 5
	}

	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var chunks []string
	var current []rune
	fresh := false

	flush := func() {
		if s := strings.TrimSpace(string(current)); s != "" {
			chunks = append(chunks, s)
		}
		current = overlapTail(current, overlap)
		fresh = false
	}

	for _, para := range paragraphBreak.Split(text, -1) {
		p := []rune(strings.TrimSpace(para))
		for len(p) > 0 {
			sep := 0
			if len(current) > 0 {
				sep = 2
			}
			room := size - len(current) - sep
			if len(p) <= room {
				if sep > 0 {
					current = append(current, '\n', '\n')
				}
				current = append(current, p...)
				fresh = true
				break
			}
			if fresh {
				flush()
				continue
			}
			// the paragraph is longer than a chunk: cut it
			if sep > 0 {
				current = append(current, '\n', '\n')
			}
			cut := cutPoint(p, room)
			current = append(current, p[:cut]...)
			p = []rune(strings.TrimLeftFunc(string(p[cut:]), unicode.IsSpace))
			fresh = true
		}
	}
	if fresh {
		flush()
	}
	return chunks
}

// cutPoint prefers the last whitespace in the second half of the window
func cutPoint(p []rune, room int) int {
	for i := room; i > room/2; i-- {
		if unicode.IsSpace(p[i-1]) {
			return i
		}
	}
	return room
}

// overlapTail returns the last n runes of chunk, starting at a word boundary when one is close
func overlapTail(chunk []rune, n int) []rune {
	if n <= 0 || len(chunk) == 0 {
		return nil
	}
	if len(chunk) <= n {
		return append([]rune(nil), chunk...)
	}
	tail := chunk[len(chunk)-n:]
	for i := 0; i < len(tail)/2; i++ {
		if unicode.IsSpace(tail[i]) {
			tail = tail[i+1:]
			break
		}
	}
	return append([]rune(nil), tail...)
}

// EstimateTokens approximates the token count of a chunk
func EstimateTokens(s string) int {
	n := len([]rune(s))
	return (n + 3) / 4
}
