// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"strconv"
	"time"

	"github.com/aymerick/raymond"

	"github.com/danielhkuo/storybooks/helpers"
	"github.com/danielhkuo/storybooks/models"
)

// helperFuncs adapts the helpers package to raymond. Arguments arrive as
// whatever the template context holds, so each one is coerced here.
func helperFuncs() map[string]interface{} {
	return map[string]interface{}{
		"formatDate": func(date interface{}, layout interface{}) string {
			return helpers.FormatDate(toTime(date), raymond.Str(layout))
		},
		"stripTags": func(input interface{}) string {
			return helpers.StripTags(raymond.Str(input))
		},
		"truncate": func(str interface{}, n interface{}) string {
			return helpers.Truncate(raymond.Str(str), toInt(n))
		},
		"editIcon": func(storyUser, loggedUser, storyID interface{}, options *raymond.Options) raymond.SafeString {
			floating := true
			if v, ok := options.HashProp("floating").(bool); ok {
				floating = v
			}
			return raymond.SafeString(helpers.EditIcon(idOf(storyUser), idOf(loggedUser), raymond.Str(storyID), floating))
		},
		"select": func(selected interface{}, options *raymond.Options) raymond.SafeString {
			return raymond.SafeString(helpers.Select(raymond.Str(selected), options.Fn()))
		},
	}
}

func toTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case *time.Time:
		if t != nil {
			return *t
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return -1
}

// idOf extracts a user ID from the shapes a template may pass
func idOf(v interface{}) string {
	switch u := v.(type) {
	case string:
		return u
	case *models.User:
		if u != nil {
			return u.ID
		}
	case models.User:
		return u.ID
	case map[string]interface{}:
		if id, ok := u["id"].(string); ok {
			return id
		}
	}
	return ""
}
