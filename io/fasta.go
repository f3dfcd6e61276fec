// Package io provides the FASTA boundary I/O and CLI-facing error
// helpers that sit outside the core merge algorithm (spec.md §6),
// grounded on goalign's own convention of keeping a small io package
// alongside align (io.ExitWithMessage, io.LogError as used from
// cmd/stats.go and cmd/seq.go).
package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/SJShaw/brawn/align"
)

// ReadFASTA parses FASTA-formatted content: one ">name" header line
// followed by one or more sequence lines, concatenated with no
// separator, until the next header or EOF. It rejects a header with no
// following sequence and a sequence line with no preceding header,
// returning names and raw sequence strings in file order.
func ReadFASTA(r io.Reader) ([]string, []string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var names []string
	var chunks [][]string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if len(chunks) > 0 && len(chunks[len(chunks)-1]) == 0 {
				return nil, nil, align.NewMissingSequenceError(">" + names[len(names)-1])
			}
			names = append(names, line[1:])
			chunks = append(chunks, nil)
			continue
		}
		if len(chunks) == 0 {
			return nil, nil, align.NewSequenceWithoutNameError(line)
		}
		chunks[len(chunks)-1] = append(chunks[len(chunks)-1], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, align.NewNotReadableError(err)
	}
	for i, c := range chunks {
		if len(c) == 0 {
			return nil, nil, align.NewMissingSequenceError(">" + names[i])
		}
	}

	seqs := make([]string, len(chunks))
	for i, c := range chunks {
		seqs[i] = strings.Join(c, "")
	}
	return names, seqs, nil
}

// WriteFASTA writes names and sequences in FASTA format to w, wrapping
// sequence lines to columns characters; columns <= 0 means no
// wrapping.
func WriteFASTA(w io.Writer, names, sequences []string, columns int) error {
	for i, name := range names {
		if _, err := fmt.Fprintf(w, ">%s\n", name); err != nil {
			return err
		}
		seq := sequences[i]
		width := columns
		if width <= 0 {
			width = len(seq)
		}
		if width == 0 {
			width = 1
		}
		for start := 0; start < len(seq); start += width {
			end := start + width
			if end > len(seq) {
				end = len(seq)
			}
			if _, err := fmt.Fprintln(w, seq[start:end]); err != nil {
				return err
			}
		}
		if len(seq) == 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
