package render

import "strings"

// The workbook is the only uncontrolled input in the system, and the rendered
// document is the only place its values are re-emitted, so these two escapers
// are the injection boundary. Every value must go through the escaper matching
// its destination context: htmlEscaper for document structure and selector
// machine values, jsEscaper for string literals inside the embedded snapshot.

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var jsEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// EscapeHTML escapes a value for a document-structure context, including
// selector option machine values.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeJS escapes a value for a double-quoted string literal inside the
// embedded data snapshot.
func EscapeJS(s string) string {
	return jsEscaper.Replace(s)
}
