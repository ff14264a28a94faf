package rendering

import "strings"

// paragraphTargetLength is the accumulated length after which a sentence-built
// paragraph is closed and a new one started.
const paragraphTargetLength = 200

// placeholderParagraph is rendered when an article has no description.
const placeholderParagraph = "No description available."

// SplitParagraphs breaks a description into display paragraphs. A description
// containing a blank line is split on it; otherwise it is split into
// sentences on ". " and the fragments are greedily reassembled until each
// paragraph exceeds the target length. An empty description yields a single
// placeholder paragraph.
func SplitParagraphs(description string) []string {
	if strings.TrimSpace(description) == "" {
		return []string{placeholderParagraph}
	}

	if strings.Contains(description, "\n\n") {
		parts := strings.Split(description, "\n\n")
		paragraphs := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				paragraphs = append(paragraphs, p)
			}
		}
		return paragraphs
	}

	fragments := strings.Split(description, ". ")
	var paragraphs []string
	current := ""
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) == "" {
			continue
		}
		if current != "" {
			current += ". " + fragment
		} else {
			current = fragment
		}
		if len(current) > paragraphTargetLength {
			paragraphs = append(paragraphs, current)
			current = ""
		}
	}
	if current != "" {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs
}
