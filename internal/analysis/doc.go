// Package analysis is the statistics engine: stop-word filtering with usage
// accounting, numbered-paragraph segmentation, keyword frequency counting by
// root prefix, relative-frequency normalization, the Pearson correlation
// matrix between keywords and the satellite likelihood-ratio analysis.
//
// Every table is owned by a single [Run] and rebuilt from scratch by
// [Analyze]; nothing is cached between runs. The package does no I/O and no
// logging. Failures of a single keyword or pair are recorded as [Skip]
// entries instead of aborting the run; only input-level problems return an
// error (see [InputError]).
package analysis
