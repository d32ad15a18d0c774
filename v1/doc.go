// Package v1 reads dumps written in format revision 1.
//
// Layout:
//
//	<root>/
//	  metadata.json        {"format_version": 1, "creation_date"?, "db_version"?, "indexes"?: [...]}
//	  <index>/             one directory per index, the name is the index name
//	    documents.jsonl    one document per line
//	    settings.json      the index settings
//	    updates.jsonl      task records sorted by enqueued_at
//
// Every member may also be stored compressed (see blobstore.OpenMember).
//
// Open reads the metadata, lists the root and opens the three members of every
// index. Documents and tasks are then decoded lazily, one line per pull. The
// task logs are merged into one stream ordered by enqueued_at; tasks with the
// same enqueued_at keep the order in which their indexes were listed.
package v1
