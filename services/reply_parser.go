package services

import (
	"ImageTagger/models"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	descriptionPrefix = "descripción:"
	tagsPrefix        = "tags:"

	// longest slice of a rejected reply kept in the error text
	maxReplyInError = 200
)

var bracketRemover = strings.NewReplacer("[", "", "]", "")

// ParseReply extracts the description and tags from a reply shaped like
//
//	Descripción: <text>
//	Tags: [a, b, c]
//
// Prefixes match case-insensitively and a later line overwrites an earlier one.
func ParseReply(reply string) (*models.ExtractionResult, error) {
	var description string
	var tags []string

	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		if rest, ok := cutPrefixFold(line, descriptionPrefix); ok {
			description = strings.TrimSpace(rest)
		} else if rest, ok := cutPrefixFold(line, tagsPrefix); ok {
			tags = splitTags(rest)
		}
	}

	if description == "" || len(tags) == 0 {
		return nil, fmt.Errorf("%w: no description or tags in %q", ErrParse, truncateReply(reply, maxReplyInError))
	}

	return &models.ExtractionResult{Description: description, Tags: tags}, nil
}

// splitTags keeps empty entries, "a,,b" gives ["a", "", "b"].
func splitTags(s string) []string {
	return lo.Map(strings.Split(bracketRemover.Replace(s), ","), func(tag string, _ int) string {
		return strings.TrimSpace(tag)
	})
}

// cutPrefixFold compares the first runes of line against a lower-case prefix.
// It counts runes rather than bytes since lowering can change a rune's width.
func cutPrefixFold(line, prefix string) (string, bool) {
	want := utf8.RuneCountInString(prefix)
	end, seen := len(line), 0
	for i := range line {
		if seen == want {
			end = i
			break
		}
		seen++
	}
	if seen < want || strings.ToLower(line[:end]) != prefix {
		return "", false
	}
	return line[end:], true
}

// truncateReply cuts s to at most n runes, marking the cut with "...".
func truncateReply(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i] + "..."
		}
		count++
	}
	return s
}
