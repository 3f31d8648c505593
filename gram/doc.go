// Package gram materializes small dense symmetric (Gram) matrices from an
// index-based entry function and offers the plain reductions over them.
//
// It is the explicit counterpart of pairstat's streaming traversal: Build
// evaluates each unordered pair exactly once, mirrors it, and keeps the full
// n×n buffer, so Trace/Mean/Variance can be read off directly. Use it for
// small n or as an oracle; for large n prefer pairstat, which never
// materializes the matrix.
//
//	g, err := gram.Build(ds.Len(), func(i, j int) float64 {
//		return k.Eval(ds.At(i), ds.At(j))
//	})
//	_ = g.Variance() // Trace/n − Mean/n²
package gram
