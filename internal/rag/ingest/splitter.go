package ingest

import "strings"

// Separators ordered from best to worst for semantic boundaries.
var separators = []string{"\n\n", "\n", ". ", " "}

// SplitText splits text into chunks of at most limit characters, each
// chunk starting with up to overlap trailing characters of its
// predecessor so meaning survives the cut.
func SplitText(text string, limit, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= limit {
		return []string{text}
	}
	if overlap >= limit {
		overlap = limit / 2
	}

	sep := ""
	for _, s := range separators {
		if strings.Contains(text, s) {
			sep = s
			break
		}
	}
	if sep == "" {
		return hardSplit(text, limit)
	}

	var chunks []string
	var current strings.Builder

	for _, part := range strings.Split(text, sep) {
		// A single part larger than the limit gets hard cut.
		if len(part) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, hardSplit(part, limit)...)
			continue
		}

		if current.Len() > 0 && current.Len()+len(sep)+len(part) > limit {
			chunk := current.String()
			chunks = append(chunks, chunk)

			current.Reset()
			// Carry the overlap only when it leaves room for the part,
			// so no chunk ever exceeds the limit.
			if overlap > 0 && len(chunk) > overlap && overlap+len(sep)+len(part) <= limit {
				current.WriteString(chunk[len(chunk)-overlap:])
			}
		}

		if current.Len() > 0 {
			current.WriteString(sep)
		}
		current.WriteString(part)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func hardSplit(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		chunks = append(chunks, text[:limit])
		text = text[limit:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
