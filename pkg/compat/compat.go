// SPDX-License-Identifier: Apache-2.0

// Package compat maps operation tokens to the spelling understood by older
// GnuPG releases.
package compat

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

// legacySpelling lists tokens introduced after a given release, with the
// spelling to use for older targets
type legacySpelling struct {
	Token  string
	Legacy string
	Since  *version.Version
}

var legacySpellings = []legacySpelling{
	{Token: "--generate-key", Legacy: "--gen-key", Since: version.Must(version.NewVersion("2.1.17"))},
	{Token: "--full-generate-key", Legacy: "--full-gen-key", Since: version.Must(version.NewVersion("2.1.17"))},
}

// ParseTarget parses a GnuPG target version. Empty and "latest" return nil,
// which means no rewriting.
func ParseTarget(s string) (*version.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "latest") {
		return nil, nil
	}

	v, err := version.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid GnuPG version %q: %w", s, err)
	}
	return v, nil
}

// Rewrite returns token spelled for target. Multi-word tokens such as
// "--expert --full-generate-key" are rewritten word by word.
func Rewrite(token string, target *version.Version) string {
	if target == nil {
		return token
	}

	words := strings.Fields(token)
	for i, w := range words {
		for _, ls := range legacySpellings {
			if w == ls.Token && target.LessThan(ls.Since) {
				words[i] = ls.Legacy
			}
		}
	}
	return strings.Join(words, " ")
}
