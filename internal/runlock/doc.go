// Package runlock serializes apply phases per working directory.
//
// Planning is read-only and always allowed, but two invocations renaming or
// extracting into the same directory would race on destinations. A file lock
// next to the media guards the window between confirmation and completion.
package runlock
