// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package view renders handlebars (.hbs) templates for the StoryBooks pages.
//
// An Engine is built once at startup from an fs.FS holding layouts/,
// partials/ and page templates. Every template gets the helpers from the
// helpers package registered under their template names: formatDate,
// stripTags, truncate, editIcon and select.
//
// Pages render inside the "main" layout unless the data sets "layout" to
// another layout name or to false. Values stored with WithLocal on the
// request context are available to every view rendered for that request.
package view
