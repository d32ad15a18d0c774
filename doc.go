// Package dumpreader reads dumps of a multi-index search engine: the
// documents, settings and task history of every index, exported to a
// directory tree.
//
// A dump is immutable. Open inspects its metadata.json, picks the reader of
// the matching format revision and returns it behind the version independent
// DumpReader interface.
//
// # Quick Start
//
// Local directory:
//
//	ctx := context.Background()
//	r, err := dumpreader.OpenDir(ctx, "./dump")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for ix := range r.Indexes() {
//	    for doc, err := range ix.Documents() {
//	        if err != nil {
//	            return err
//	        }
//	        restore(ix.Name(), doc)
//	    }
//	}
//
// Object storage:
//
//	store := s3.NewStore(client, "my-bucket", "dumps/2021-03-04")
//	r, err := dumpreader.Open(ctx, store)
//
// # Tasks
//
// Every index keeps its task log sorted by enqueue time. Tasks merges the
// logs of all indexes into one ordered sequence, holding a single record per
// index in memory:
//
//	for task, err := range r.Tasks() {
//	    if err != nil {
//	        log.Print(err) // only the tasks of one index are lost
//	        continue
//	    }
//	    fmt.Println(task.Index, task.Status.UpdateID, task.Status.Enqueued())
//	}
//
// # Ownership
//
// The reader owns every file it opens until Close. OpenTemp additionally
// takes ownership of a TempDir and removes it on Close, or immediately when
// opening fails.
//
// # Errors
//
// Failures match the sentinels ErrIO, ErrBadIndexName, ErrCorruptMetadata
// and ErrUnsupportedVersion through errors.Is. Records that fail to decode
// are reported as *ParseError.
package dumpreader
