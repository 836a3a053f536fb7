package pipeline

import "strings"

var hostileChars = strings.NewReplacer(
	"<", " ",
	">", " ",
	":", " ",
	`"`, " ",
	"/", " ",
	`\`, " ",
	"|", " ",
	"?", " ",
	"*", " ",
)

// Sanitize replaces characters that are not allowed in Windows path segments with spaces.
func Sanitize(segment string) string {
	return hostileChars.Replace(segment)
}
