// 31 July 2020

// Randsam is for making random SAM files for testing the code.
// Usage:
//
//	randsam [options] fname nrec maxlen
//
// will generate nrec records with sequence lengths from 1 to maxlen and
// write them to fname. If fname is - the records go to standard output.
//
// Flags:
//
//	-d
//		fraction of records which repeat the read name of the record
//		before them, like a multimapper
//	-x
//		fraction of records with a symbol which is not a nucleotide
//	-r
//		random number seed
//
// The content is not so important. We want data for benchmarking and a
// known answer for the number and lengths of sequences to be found.
package main
