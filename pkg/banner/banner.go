// Package banner renders the comment block prepended to the compiled bundle.
package banner

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Metadata is the plugin information shown in the banner.
type Metadata struct {
	Name    string
	Version string
	HelpURL string
	Author  string
}

// Generate renders the bordered header for meta. The output is deterministic.
//
// Widths are counted in UTF-16 code units so files produced by earlier
// JavaScript tooling keep identical headers.
func Generate(meta Metadata) string {
	lines := []string{
		fmt.Sprintf("Welcome to the compiled source code of „%s”!", meta.Name),
		fmt.Sprintf("This compiled version is based on v%s of the following repository:", meta.Version),
		meta.HelpURL,
		"",
	}

	width := 0
	for _, line := range lines {
		width = max(width, textWidth(line))
	}

	footer := "made with love by " + meta.Author
	lines = append(lines, pad(width-textWidth(footer))+footer)

	var b strings.Builder
	b.WriteString("/*" + strings.Repeat("*", width) + "*\\")
	for _, line := range lines {
		b.WriteString("\n| " + line + pad(width-textWidth(line)) + " |")
	}
	b.WriteString("\n\\*" + strings.Repeat("*", width) + "*/")
	return b.String()
}

// pad returns n spaces; negative counts yield no padding.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func textWidth(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
