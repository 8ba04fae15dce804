// 31 July 2020
// 16 Oct 2026 writes SAM records instead of fasta.

package randsam

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"sync"
)

const header = "@HD\tVN:1.6\tSO:unsorted\n" +
	"@SQ\tSN:chr1\tLN:10000000\n" +
	"@PG\tID:randsam\tPN:randsam\n"

const badSym = 'X' // Put into sequences when we want them to be rejected

var letters = []byte("ACGTACGTACGTacgtN")

// RandSamArgs is the set of arguments passed to the main function
type RandSamArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Nrec    int       // number of records
	MaxLen  int       // sequence lengths are from 1 to MaxLen
	DupFrac float64   // fraction of records which repeat the previous read name
	BadFrac float64   // fraction of records with a symbol that is not a nucleotide
}

// Tally says what a reader should find in the records we wrote.
// Lengths are what you get when every record is counted, UniqLengths
// when only the first record for each read name is looked at.
type Tally struct {
	Lengths      []int
	UniqLengths  []int
	NInvalid     int
	NUniqInvalid int
	NDup         int
}

type record struct {
	name string
	flag int
	pos  int
	seq  []byte
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	l := len(letters)
	for i := range ret {
		ret[i] = letters[rnd.Intn(l)]
	}
	return ret
}

// writerec sends records out in SAM format.
func writerec(rChan <-chan record, w *bufio.Writer, wg *sync.WaitGroup, errp *error) {
	defer wg.Done()
	for r := range rChan {
		if *errp != nil {
			continue // drain the channel
		}
		s := r.name + "\t" + strconv.Itoa(r.flag) + "\tchr1\t" + strconv.Itoa(r.pos) +
			"\t255\t" + strconv.Itoa(len(r.seq)) + "M\t*\t0\t0\t" + string(r.seq) + "\t*\n"
		if _, err := w.WriteString(s); err != nil {
			*errp = err
		}
	}
	if *errp == nil {
		*errp = w.Flush()
	}
}

// RandSamMain writes random SAM records to an io.Writer and returns a
// tally of what it wrote.
func RandSamMain(args *RandSamArgs) (*Tally, error) {
	if args.MaxLen < 1 {
		return nil, fmt.Errorf("maximum sequence length %d, must be at least 1", args.MaxLen)
	}
	w := bufio.NewWriter(args.Wrtr)
	if _, err := w.WriteString(header); err != nil {
		return nil, err
	}
	var wg sync.WaitGroup
	var werr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	rChan := make(chan record)
	wg.Add(1)
	go writerec(rChan, w, &wg, &werr)

	tally := new(Tally)
	width := len(strconv.Itoa(args.Nrec))
	var nread int
	var name string
	for i := 0; i < args.Nrec; i++ {
		r := record{pos: 1 + rnd.Intn(1000000)}
		r.seq = getseq(1+rnd.Intn(args.MaxLen), rnd)
		bad := rnd.Float64() < args.BadFrac
		if bad {
			r.seq[rnd.Intn(len(r.seq))] = badSym
		}
		dup := i > 0 && rnd.Float64() < args.DupFrac
		if dup {
			r.flag = 256 // secondary alignment
			tally.NDup++
		} else {
			nread++
			name = fmt.Sprintf("read%0*d", width, nread)
		}
		r.name = name
		if bad {
			tally.NInvalid++
		} else {
			tally.Lengths = append(tally.Lengths, len(r.seq))
		}
		if !dup { // Later records with this name are never looked at
			if !bad {
				tally.UniqLengths = append(tally.UniqLengths, len(r.seq))
			} else {
				tally.NUniqInvalid++
			}
		}
		rChan <- r
	}
	close(rChan)
	wg.Wait()
	if werr != nil {
		return nil, werr
	}
	return tally, nil
}
