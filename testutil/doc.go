// Package testutil provides testing utilities for dumpreader.
//
// This package is intended for use in tests only. It builds dump fixtures,
// either by hand or from a seeded random generator.
//
// # Fixtures
//
//	d := testutil.Dump{Indexes: []testutil.Index{{
//	    Name:      "movies",
//	    Documents: []string{`{"id":1}`},
//	    Updates:   []string{testutil.Task(0, 10)},
//	}}}
//	err := d.WriteDir(t.TempDir())
//
// # Random Task Logs
//
//	rng := testutil.NewRNG(seed)
//	d := rng.TaskLogs(4, 50, 20) // 4 indexes, up to 50 tasks each
package testutil
