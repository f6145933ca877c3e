package descriptor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// utf8BOM is skipped before parsing; it is not content.
var utf8BOM = []byte("\xef\xbb\xbf")

// xmlSpace holds the characters XML treats as white space.
const xmlSpace = " \t\r\n"

// checkWellFormed decodes every token of data with a strict decoder and
// enforces the document-level rules: exactly one root element, only white
// space, comments, processing instructions and directives outside it, and
// no repeated attribute on any element.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return fmt.Errorf("%w: <%s>", ErrMultipleRoots, t.Name.Local)
				}
			}
			if err := checkAttrs(t); err != nil {
				return err
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.Trim(string(t), xmlSpace) != "" {
				return ErrContentOutsideRoot
			}
		}
	}

	if roots == 0 {
		return ErrNoRootElement
	}
	return nil
}

func checkAttrs(el xml.StartElement) error {
	seen := make(map[xml.Name]bool, len(el.Attr))
	for _, a := range el.Attr {
		if seen[a.Name] {
			return fmt.Errorf("%w: %q on <%s>", ErrDuplicateAttribute, qualified(a.Name), el.Name.Local)
		}
		seen[a.Name] = true
	}
	return nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
