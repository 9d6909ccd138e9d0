package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// decodeText parses the line-oriented format:
//
//	V E
//	from to weight   (E times)
//
// Blank lines and lines starting with '#' are skipped anywhere.
func decodeText(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	var (
		doc      Document
		declared = -1 // edge count from the header; -1 until seen
		lineNo   int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// 1) Header
		if declared < 0 {
			nums, err := parseInts(line, 2, lineNo)
			if err != nil {
				return nil, err
			}
			if nums[1] < 0 {
				return nil, fmt.Errorf("line %d: negative edge count %d: %w", lineNo, nums[1], ErrSyntax)
			}
			doc.Vertices = int(nums[0])
			declared = int(nums[1])
			doc.Edges = make([]Edge, 0, declared)
			continue
		}

		// 2) Edge lines
		if len(doc.Edges) == declared {
			return nil, fmt.Errorf("line %d: more than %d edges: %w", lineNo, declared, ErrEdgeCount)
		}
		nums, err := parseInts(line, 3, lineNo)
		if err != nil {
			return nil, err
		}
		doc.Edges = append(doc.Edges, Edge{From: int(nums[0]), To: int(nums[1]), Weight: nums[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if declared < 0 {
		return nil, fmt.Errorf("missing header: %w", ErrSyntax)
	}
	if len(doc.Edges) != declared {
		return nil, fmt.Errorf("got %d edges, header declares %d: %w", len(doc.Edges), declared, ErrEdgeCount)
	}

	return &doc, nil
}

// parseInts splits line into exactly want base-10 integers.
func parseInts(line string, want, lineNo int) ([]int64, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, fmt.Errorf("line %d: want %d fields, got %d: %w", lineNo, want, len(fields), ErrSyntax)
	}
	out := make([]int64, want)
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: field %d %q: %w", lineNo, i+1, f, ErrSyntax)
		}
		out[i] = v
	}

	return out, nil
}
