// Package allowlist decides which email addresses may sign in.
package allowlist

import "strings"

// List is an immutable, case-insensitive set of email addresses.
type List struct {
	emails map[string]struct{}
}

func New(emails []string) List {
	l := List{emails: make(map[string]struct{}, len(emails))}
	for _, email := range emails {
		normalized := Normalize(email)
		if normalized == "" {
			continue
		}
		l.emails[normalized] = struct{}{}
	}
	return l
}

// Normalize trims surrounding whitespace and lowercases the address.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (l List) Allows(email string) bool {
	_, ok := l.emails[Normalize(email)]
	return ok
}

func (l List) Len() int {
	return len(l.emails)
}
