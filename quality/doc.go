// Package quality measures how well a prng.Source behaves as a uniform
// generator on [0,1).
//
// Assess draws a fixed number of values and reports:
//
//   - the sample mean and standard deviation (ideal: 0.5 and 1/√12);
//   - the lag-1 Pearson correlation between consecutive draws (ideal: 0);
//   - a chi-square goodness-of-fit statistic over equal-width buckets and
//     its p-value under buckets-1 degrees of freedom.
//
// Because the generator is deterministic, a report for a given seed never
// changes; the command line exposes it so a seed can be inspected before
// printing a large batch of sheets.
package quality
