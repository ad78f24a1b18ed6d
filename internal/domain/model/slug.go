package model

import gosislug "github.com/gosimple/slug"

// Slugify derives the URL slug for a brand or product from its name:
// lowercase, ASCII-normalized, hyphen-joined. Called exactly once, when the
// record is first created; name edits never regenerate the slug.
func Slugify(name string) string {
	return gosislug.Make(name)
}
