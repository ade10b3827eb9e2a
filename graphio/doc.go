// Package graphio loads graphs from delimited edge lists.
//
// Each record names two endpoints; every other column is ignored. Records
// may come from a plain file or from a snappy-framed stream (".sz" files,
// see Open). Typical inputs are whitespace separated "u v" lists and CSV
// exports such as the OpenFlights routes table:
//
//	r, _ := os.Open("routes.csv")
//	g, rep, err := graphio.ReadEdgeList(r,
//		graphio.WithComma(','),
//		graphio.WithHeaderColumns("Source airport ID", "Destination airport ID"))
//
// Records with a missing endpoint (empty or the NA marker, `\N` by default)
// are skipped, self-loops are dropped and repeated edges collapse into one.
// The Report counts what was skipped.
package graphio
