// Package packaging assembles complete .tendies wallpaper archives.
//
// The assembler owns the pipeline ordering: the source is probed before any
// workspace exists, extraction finishes before any document is generated
// (frame count and duration feed the documents), and every file is on disk
// before the descriptors subtree is zipped. The finished zip is renamed into
// the output directory as the last step, so a partially built package is
// never observable outside the workspace — and the workspace itself is
// removed on every exit path.
package packaging
