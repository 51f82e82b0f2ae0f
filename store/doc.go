// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides data access for users and stories.

	users := store.NewUsers(db)
	stories := store.NewStories(db)

Queries use $N placeholders, which both lib/pq and modernc.org/sqlite accept.
Lookups of missing rows return ErrNotFound.

Story bodies are sanitised with bluemonday's UGC policy before they are
stored, so templates can render them unescaped. Titles are required and the
status must be "public" or "private" (empty defaults to public).
*/
package store
