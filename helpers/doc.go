// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package helpers implements the template helper functions.

The view package registers them under these names:

	formatDate  FormatDate(t, layout)      strftime layout, or "fromNow"
	stripTags   StripTags(s)               plain text from HTML
	truncate    Truncate(s, n)             cut at a word boundary, add "..."
	editIcon    EditIcon(owner, user, id, floating)
	select      Select(selected, block)    mark the matching <option>

FormatDate uses ncruces/go-strftime for layouts and dustin/go-humanize for
relative times. StripTags uses bluemonday's strict policy.
*/
package helpers
