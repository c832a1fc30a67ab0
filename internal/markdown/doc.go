// Package markdown turns on-disk blog sources into structured documents.
// It covers frontmatter extraction, filesystem discovery, and Goldmark
// rendering; collection-level concerns (validation, listing) live in the
// store package.
package markdown
