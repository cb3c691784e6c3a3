// mkfixture writes a Parquet file of date strings in one field order with
// assorted time and subsecond tails, plus a few nulls and junk values.
// Usage: go run ./cmd/mkfixture --out testdata/dates.parquet --rows 500 --order dmy --sep /
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

func main() {
	out := flag.String("out", "testdata/dates.parquet", "output parquet")
	rows := flag.Int("rows", 500, "rows to write")
	order := flag.String("order", "dmy", "field order: ymd, dmy or mdy")
	sep := flag.String("sep", "/", "date separator, or \"none\" for fixed-width digits")
	junk := flag.Float64("junk", 0.02, "fraction of null or non-date values")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	o, err := normalize.ParseFieldOrder(*order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "order: %v\n", err)
		os.Exit(1)
	}
	var sepRune rune
	if *sep != "none" {
		rs := []rune(*sep)
		if len(rs) != 1 {
			fmt.Fprintf(os.Stderr, "sep must be a single character or \"none\"\n")
			os.Exit(1)
		}
		sepRune = rs[0]
	}
	opts := normalize.FormatOptions{Order: o, Separator: sepRune}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	span := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC).Sub(start)

	selected := make([]model.SourceRow, *rows)
	counts := make(map[string]int)
	for i := range selected {
		id := int64(i + 1)
		selected[i].RowID = &id

		if rng.Float64() < *junk {
			if rng.IntN(2) == 0 {
				counts["null"]++
				continue
			}
			v := "n/a"
			selected[i].Value = &v
			counts["junk"]++
			continue
		}

		t := start.Add(time.Duration(rng.Int64N(int64(span))))
		v := render(t, opts, rng.IntN(4))
		selected[i].Value = &v
		counts["date"]++
	}

	w, err := parquetio.Create[model.SourceRow](*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	if err := w.Write(selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d rows to %s (%s)\n", w.Written(), *out, opts)
	for _, k := range []string{"date", "null", "junk"} {
		fmt.Printf("  %-6s %d\n", k, counts[k])
	}
}

// render formats t in opts with one of four time styles: none, HH:MM,
// HH:MM:SS or HH:MM:SS.mmm.
func render(t time.Time, opts normalize.FormatOptions, style int) string {
	y, m, d := fmt.Sprintf("%04d", t.Year()), fmt.Sprintf("%02d", int(t.Month())), fmt.Sprintf("%02d", t.Day())
	var fields [3]string
	yi, mi, di := opts.Order.Indices()
	fields[yi], fields[mi], fields[di] = y, m, d

	sep := ""
	if !opts.Fixed() {
		sep = string(opts.Separator)
	}
	s := fields[0] + sep + fields[1] + sep + fields[2]

	switch style {
	case 1:
		s += t.Format(" 15:04")
	case 2:
		s += t.Format(" 15:04:05")
	case 3:
		s += t.Format("T15:04:05.000")
	}
	return s
}
