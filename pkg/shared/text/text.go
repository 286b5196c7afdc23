// Package text renders report fragments with a small fixed markup vocabulary
// consumed by downstream presentation layers.
package text

import (
	"fmt"
)

// Heading1 formats text as a top level heading.
func Heading1(text string) string {
	return fmt.Sprintf("# %s", text)
}

// Heading2 formats text as a second level heading.
func Heading2(text string) string {
	return fmt.Sprintf("## %s", text)
}

// Heading3 formats text as a third level heading.
func Heading3(text string) string {
	return fmt.Sprintf("### %s", text)
}

// Heading4 formats text as a section heading.
func Heading4(text string) string {
	return fmt.Sprintf("#### %s", text)
}

// Heading5 formats text as a subsection heading.
func Heading5(text string) string {
	return fmt.Sprintf("##### %s", text)
}

// Bullet formats text as a bullet line.
func Bullet(text string) string {
	return fmt.Sprintf("* %s", text)
}
