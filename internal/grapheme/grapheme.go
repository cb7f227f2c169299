package grapheme

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Fit returns the byte and rune length of the longest prefix of text that is
// at most room bytes long and ends on a grapheme cluster boundary.
func Fit(text string, room int) (nbytes, nchars int) {
	if room <= 0 || text == "" {
		return 0, 0
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, to := g.Positions()
		if to > room {
			break
		}
		nbytes = to
		nchars += utf8.RuneCountInString(text[from:to])
	}
	return nbytes, nchars
}

// Width returns the terminal cell width of text, summed per cluster.
func Width(text string) int {
	if text == "" {
		return 0
	}
	total := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		total += clusterWidth(g.Str())
	}
	return total
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		// runewidth reports zero for some emoji sequences uniseg knows.
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}
