// Package fs provides read-only filesystem abstractions for testability and
// fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: an open file that can be read sequentially and closed
//   - [FileSystem]: the operations a dump reader performs (open, list, stat)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	file, err := fs.Default.Open(path)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("updates.jsonl", fs.Fault{FailAfterBytes: 16})
//	// inject ffs into component under test
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Local reads are non-interruptible at the syscall level.
package fs
