// 16 Oct 2026

// Samlen reads a SAM file and writes the mean and standard deviation of
// the read sequence lengths, each rounded to an integer, to two files.
//
// Usage:
//
//	samlen --sam in.sam --mean mean.txt --sd sd.txt [--multimappers] [--hist hist.tsv] [-q]
//
// Flags:
//
//	--sam
//		input SAM file. Use - to read standard input.
//	--mean, --sd
//		output files. Each gets a single integer with no newline.
//	--multimappers
//		only the first record for each read name is looked at, so a read
//		which maps to several places is counted once.
//	--hist
//		also write a table of length, count, fraction and cumulative fraction.
//	-q
//		do not print the summary line.
//
// Only sequences made of a, c, g, t and n (either case) are counted. Other
// sequences, including "*", are reported on stderr and skipped. A data line
// with fewer than ten fields, blank lines included, stops the run.
// Rounding is half to even, so a mean of 14.5 is written as 14.
//
// Exit status is 0 on success, 1 if anything went wrong, 2 for a
// command line error and 255 after an interrupt.
package main
