// Package cel evaluates report filter expressions in memory, backed by Google's cel-go.
//
// See https://github.com/google/cel-go and https://opensource.google/projects/cel for more
// information about CEL.
//
// The hosting report engine is the authority on what a filter expression means. This package
// exists so that composed filters can be previewed, and tested, against a handful of respondent
// records without a report engine: an expression tree built by a reportfilter.Resolver is
// translated to a CEL expression over a single variable, r, holding the record.
//
// # Records
//
// A record is a map from question id to answer. Answer codes may be strings or numbers; they are
// compared as strings, the way the report engine compares precodes. A missing key or a nil value
// is a null answer. Date questions must hold a time.Time (or a *timestamppb.Timestamp).
//
// By default records are keyed by bare question id and the data source qualifier of a field is
// ignored. Use QualifiedFields to key records by "ds:qid" instead.
//
// # Translation
//
// In the host grammar
//
//	(IN(ds0:gender, "1") OR IN(ds0:gender, "2")) AND q1 >= TODATE("2024-01-01")
//
// becomes
//
//	((("gender" in r && string(r["gender"]) in ["1"]) || ("gender" in r && string(r["gender"]) in ["2"]))
//	  && ("q1" in r && r["q1"] >= timestamp("2024-01-01T00:00:00Z")))
//
// PValStrArr parameter references are resolved from the values given with ParameterValues.
// Host-provided fragments (reportfilter.Raw) can't be translated and fail compilation with
// reportfilter.ErrUnsupportedNode.
package cel
