// Package gitignore locates the user's global gitignore file, parses its
// patterns, and translates them into the recursive glob syntax used by
// editor exclusion settings.
//
// The global gitignore path is resolved in order:
//
//  1. git config --global core.excludesFile (if git is available)
//  2. $XDG_CONFIG_HOME/git/ignore (or ~/.config/git/ignore)
//  3. ~/.gitignore_global
//
// The first existing, readable file wins. All ambient inputs (git config,
// XDG directories, home directory, filesystem) are carried by an
// Environment value so tests can run against fixed fixtures.
package gitignore
