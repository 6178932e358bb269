/*
Package literal lays out the body of a C array initializer.

Tokens are separated by ", " with no separator after the final token, and a
line break is written after every fixed number of tokens so that each line of
the generated source corresponds to one row (or band) of the image.
*/
package literal

import (
	"bufio"
	"io"
)

const separator = ", "

// TokenFunc returns the textual form of the i'th token.
type TokenFunc func(i int) string

// Write writes n tokens to w, breaking the line after every perLine tokens.
// A perLine value less than one puts every token on a single line.
func Write(w io.Writer, n, perLine int, token TokenFunc) error {
	if perLine < 1 {
		perLine = n
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < n; i++ {
		bw.WriteString(token(i))
		if i != n-1 {
			bw.WriteString(separator)
		}
		if (i+1)%perLine == 0 || i == n-1 {
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
