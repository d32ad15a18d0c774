package model

// Document is one raw document of an index.
//
// Numbers are kept as json.Number so a document compares equal to the value on
// its source line without float64 rounding.
type Document map[string]any
