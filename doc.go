// Package tracekit reads, validates and annotates binary seismic trace
// files.
//
// Every supported trace format stores a version number at a fixed byte
// offset inside its header region. The resolver reads that field in both
// byte orders and matches it against the registered format definitions,
// so files written on either endianness machine are recognized without
// guesswork:
//
//	res := tracekit.ResolveFile("station1.sac")
//	if res.Resolved() {
//		fmt.Println(res.Version, res.ByteOrder)
//	}
//
// Parsed traces become Records: plain values carrying identity, format
// metadata, a header block of named fields and optionally the raw data
// section. Sets of records are validated with Check, which scans a fixed
// sequence of structural invariants and reports the first violation with
// a stable identifier:
//
//	if rep := tracekit.Check(records); rep != nil {
//		fmt.Println(rep.ID, rep.Message)
//	}
//
// This is useful for:
//   - Scanning large archives of mixed-provenance trace files
//   - Guarding processing pipelines against malformed inputs
//   - Stamping event catalogs (SOD CSV, NDK) into trace headers
//   - Building services that serve trace metadata from any Source
//
// Sources abstract where trace files live. The local and memory
// implementations register themselves when imported:
//
//	import _ "github.com/seisgo/tracekit/source/local"
//
// A Toolkit ties a source to the resolver, validator and event importer;
// Default assembles one from TRACEKIT_* environment variables.
package tracekit
