// Package plan turns indexed videos and probed subtitle streams into the
// concrete operations the CLI previews and applies.
//
// Planning is pure: the extraction planner only calls its Prober
// collaborator, and the rename planner only reads the directory listing.
// Nothing here touches ffmpeg or renames a file; operations carry everything
// the apply phase needs.
package plan
