package agent

import "strings"

// Fallback is shown when the model produced no usable text.
const Fallback = "I couldn't generate a response."

// CleanResponse normalizes a raw model reply for display. The steps run in
// a fixed order:
//
//  1. remove the literal "That's correct! "
//  2. remove the literal "indeed "
//  3. remove the literal " indeed"
//  4. keep only the first line
//  5. trim whitespace; an empty result becomes the fallback string
//
// Small local models pad confirmations around tool results ("That's
// correct! ...", "... indeed"); these rules strip that padding.
func CleanResponse(response string) string {
	response = strings.ReplaceAll(response, "That's correct! ", "")
	response = strings.ReplaceAll(response, "indeed ", "")
	response = strings.ReplaceAll(response, " indeed", "")
	response = strings.SplitN(response, "\n", 2)[0]
	response = strings.TrimSpace(response)

	if response == "" {
		return Fallback
	}
	return response
}
