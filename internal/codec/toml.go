package codec

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// decodeTOML reads a Document and rejects keys it does not know.
func decodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrSyntax, undecoded[0].String())
	}

	return &doc, nil
}
