// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package helpers

import (
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/ncruces/go-strftime"
)

// FormatFromNow renders a relative time such as "3 days ago"
const FormatFromNow = "fromNow"

// DefaultDateFormat is used when a template passes no format
const DefaultDateFormat = "%B %d, %Y"

var stripPolicy = bluemonday.StrictPolicy()

// FormatDate formats t with a strftime layout, or as a relative time when
// layout is "fromNow"
func FormatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	switch layout {
	case FormatFromNow:
		return humanize.Time(t)
	case "":
		layout = DefaultDateFormat
	}
	return strftime.Format(layout, t)
}

// StripTags removes all HTML tags, leaving plain text
func StripTags(input string) string {
	return html.UnescapeString(stripPolicy.Sanitize(input))
}

// Truncate shortens s to at most n characters, cutting at the last space
// when there is one, and appends "..."
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n < 0 || len(runes) <= n {
		return s
	}

	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// EditIcon returns an edit link for storyID when the logged-in user owns
// the story, and "" otherwise
func EditIcon(storyUserID, loggedUserID, storyID string, floating bool) string {
	if storyUserID == "" || storyUserID != loggedUserID {
		return ""
	}

	href := "/stories/edit/" + url.PathEscape(storyID)
	if floating {
		return `<a href="` + href + `" class="btn-floating halfway-fab blue"><i class="fas fa-edit fa-small"></i></a>`
	}
	return `<a href="` + href + `"><i class="fas fa-edit"></i></a>`
}

// Select marks the first <option> matching selected in the rendered block
func Select(selected, block string) string {
	if selected == "" {
		return block
	}

	quoted := regexp.QuoteMeta(selected)

	valueAttr := regexp.MustCompile(` value="` + quoted + `"`)
	if loc := valueAttr.FindStringIndex(block); loc != nil {
		return block[:loc[1]] + ` selected="selected"` + block[loc[1]:]
	}

	label := regexp.MustCompile(`>` + quoted + `</option>`)
	if loc := label.FindStringIndex(block); loc != nil {
		return block[:loc[0]] + ` selected="selected"` + block[loc[0]:]
	}

	return block
}
