// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "strings"

// renderMarkdown builds Markdown from text items in reading order when the
// engine returned the structured document without a Markdown export.
// Page headers and footers are furniture and are left out.
func renderMarkdown(texts []textItem) string {
	blocks := make([]string, 0, len(texts))
	for _, t := range texts {
		text := strings.TrimSpace(t.Text)
		if text == "" {
			continue
		}
		switch t.Label {
		case "page_header", "page_footer":
			continue
		case "title":
			blocks = append(blocks, "# "+text)
		case "section_header":
			blocks = append(blocks, "## "+text)
		case "list_item":
			blocks = append(blocks, "- "+text)
		case "code":
			blocks = append(blocks, "```\n"+text+"\n```")
		default:
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n\n")
}
