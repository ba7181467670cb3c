// Package fileref opens audio files named by host runtime path objects.
//
// A host runtime hands paths over as its own string objects. fileref decodes
// such an object into the platform's native path encoding (UTF-16 on
// Windows, UTF-8 everywhere else) and opens the file with audiometa,
// yielding a read-only FileRef.
//
// # Quick Start
//
//	ref := fileref.Make(host.NewStr("song.mp3"))
//	if ref == nil {
//		// absent path, undecodable path, or a file audiometa can't open
//		return
//	}
//	defer ref.Close()
//
//	file, _ := ref.File()
//	fmt.Printf("%s - %s\n", file.Tags.Artist, file.Tags.Title)
//
// # Failure Signal
//
// Make reports every failure the same way: it returns nil. A decode failure
// also clears the runtime's pending error, so nothing leaks into later
// calls. Install a logger with WithLogger to see why a call failed.
//
// # Read Styles
//
// Make always opens with the Average read style. Open accepts any style:
//
//	ref, err := fileref.Open("audiobook.m4b", fileref.Accurate)
//
// # Concurrency
//
// A Bridge holds no per-call state. MakeMany bridges many paths in
// parallel:
//
//	b := fileref.New(host.Default())
//	refs, err := b.MakeMany(ctx, objs...)
package fileref
