// Package naming resolves the base names used for derived subtitle files.
//
// Extraction and renaming treat a failed episode lookup differently, and the
// asymmetry is deliberate: extraction falls back to naming subtitles after
// the origin video itself, while renaming skips the subtitle entirely so a
// stray file never gets a fabricated episode name.
package naming
