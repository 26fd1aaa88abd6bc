package markdown

import "strings"

// Filter drops vacuous message sections from a rendered transcript. A
// section starts at a "## " header and runs to the next one; lines before
// the first header (title and metadata) always pass through. Surviving
// sections are kept byte for byte and sections are independent, so applying
// the filter twice gives the same result as applying it once.
func Filter(lines []string) []string {
	var out []string
	i := 0

	for i < len(lines) && !isMessageHeader(lines[i]) {
		out = append(out, lines[i])
		i++
	}

	for i < len(lines) {
		j := i + 1
		for j < len(lines) && !isMessageHeader(lines[j]) {
			j++
		}
		if !vacuous(lines[i+1 : j]) {
			out = append(out, lines[i:j]...)
		}
		i = j
	}

	return out
}

func isMessageHeader(line string) bool {
	return strings.HasPrefix(line, "## ")
}

// vacuous reports whether a section body holds no genuine content. Blank
// lines, bare "###" subsection headers and fence markers do not count;
// neither does whitespace inside a fenced block, so a tool result whose
// fence contains only blanks is still vacuous.
func vacuous(body []string) bool {
	inFence := false
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if trimmed == "" {
			continue
		}
		if !inFence && strings.HasPrefix(trimmed, "### ") {
			continue
		}
		return false
	}
	return true
}
