// Package mathsheets generates printable math worksheets whose content
// depends only on a 32-bit seed: the same seed and options always give the
// same problems and answer key, and a fresh seed gives a different but
// equally valid sheet.
//
// What is in the box?
//
//	• A bit-exact mulberry32 stream and a short hex seed token
//	• Sampling patterns: bounded retries, guaranteed edge cases, seeded
//	  shuffles, round-robin category balancing, weighted picks
//	• Number-theory kernels: GCD/LCM step ladders, primality,
//	  factorization, factorial/permutation/combination counts
//	• Eight topic generators, each proving its own answers (Check)
//	• Renderers (Markdown, HTML, JSON, XLSX), a share-link codec, a CLI
//	  and an HTTP preview server
//
// Under the hood, everything is organized in small packages:
//
//	seed/        seed type, hex token codec, fresh seeds
//	prng/        Source interface and the Mulberry32 generator
//	sample/      constraint-satisfying sampling patterns over a Source
//	numtheory/   GCD/LCM ladder, primes, factorization, counting
//	worksheet/   topic generators, problem records, registry
//	render/      md, html, json and xlsx output
//	link/        canonical share-link query strings
//	quality/     uniformity and serial-correlation report for a seed
//	internal/    config, logging, HTTP server, command line
//	cmd/worksheet  the binary
//
// Quick example:
//
//	sheet := worksheet.GenerateDivision(0x2a, worksheet.DivisionOptions{Count: 4})
//	for _, p := range sheet {
//		fmt.Println(p.Question(), p.Answer())
//	}
//	// 14 ÷ 7 = 2
//	// 22 ÷ 6 = 3 r 4
//	// 42 ÷ 8 = 5 r 2
//	// 63 ÷ 9 = 7
//
// Every generator draws from exactly one generator instance created from
// the seed at the start of the call. Nothing is shared between calls, so
// generation is safe from any number of goroutines.
package mathsheets
