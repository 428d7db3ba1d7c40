// Package platform provides cross-platform filesystem operations. Files are
// replaced by writing a sibling temporary file and renaming it over the
// target, so readers see either the old or the new content. On Windows
// permission bits are not applied because Windows does not support
// Unix-style modes.
package platform
