// Package hint computes typed-ahead completions from command hints.
package hint

import (
	"strings"

	"github.com/nathoo/textbasedgame/engine/command"
)

// Resolve returns the rest of the first hint that starts with input,
// scanning commands in order and each command's hints in order. The
// comparison is case-sensitive: hints complete the exact surface form.
func Resolve(input string, set command.Set) string {
	if input == "" {
		return ""
	}
	for _, b := range set {
		for _, h := range b.Hints {
			if strings.HasPrefix(h, input) {
				return h[len(input):]
			}
		}
	}
	return ""
}
