// Package filesystem provides adapters that read characters and fortunes
// from files.
//
// Both adapters read through an [io/fs.FS], so tests run against
// [testing/fstest.MapFS] and production code against [os.DirFS].
// File contents are translated into domain types at this boundary:
// callers never see file handles, raw bytes, or path errors. A missing
// file becomes [domain.ErrArtNotFound] or [domain.ErrCorpusUnavailable].
package filesystem
