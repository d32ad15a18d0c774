// Package model defines the version-neutral types shared by every dump format
// reader: dump metadata, documents, settings, task records and the error
// taxonomy.
//
// Concrete readers (see package v1) decode their on-disk records into these
// types so that an import routine never has to know which format revision
// produced a dump.
package model
