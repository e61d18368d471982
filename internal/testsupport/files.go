package testsupport

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// WriteMoviesCSV fills path with a deterministic movie dataset in the raw
// IMDb export shape: parenthesized years, "NNN min" durations, multi-valued
// genres, and comma-grouped vote counts.
func WriteMoviesCSV(t testing.TB, path string, rows int) {
	t.Helper()

	genres := []string{"Drama", "Action", "Comedy", "Drama, Romance"}
	directors := []string{"R. Kapoor", "S. Khan", "M. Rao", "A. Sen"}

	var b strings.Builder
	b.WriteString("Name,Year,Duration,Genre,Rating,Votes,Director,Actor 1,Actor 2,Actor 3\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "Movie %d,(%d),%d min,%q,%.1f,\"%d\",%s,Actor A,Actor B,Actor C\n",
			i,
			1990+i%30,
			100+i%60,
			genres[i%len(genres)],
			5.0+float64(i%40)/10.0,
			500+i*37,
			directors[i%len(directors)],
		)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
