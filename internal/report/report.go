package report

import (
	"fmt"
	"math"
	"os"
)

// Ratio compares the size of an uncompressed file with its compressed form.
type Ratio struct {
	Before int64
	After  int64
}

// Percent returns the space saved, rounded to one decimal. It is negative
// when the output grew and zero for an empty Before.
func (r Ratio) Percent() float64 {
	if r.Before == 0 {
		return 0
	}
	p := 100 - float64(r.After)/float64(r.Before)*100
	return math.Round(p*10) / 10
}

func (r Ratio) String() string {
	return fmt.Sprintf("before: %dbytes, after: %dbytes, compression %.1f%%", r.Before, r.After, r.Percent())
}

// Files reads the sizes of an uncompressed and a compressed file.
func Files(uncompressed, compressed string) (Ratio, error) {
	before, err := os.Stat(uncompressed)
	if err != nil {
		return Ratio{}, err
	}
	after, err := os.Stat(compressed)
	if err != nil {
		return Ratio{}, err
	}
	return Ratio{Before: before.Size(), After: after.Size()}, nil
}
