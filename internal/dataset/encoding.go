package dataset

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is the code page used by Korean government CSV exports.
const DefaultEncoding = "cp949"

// LookupEncoding resolves an encoding label. Windows code page names that the
// WHATWG index does not know (cp949, ms949, uhc) map to EUC-KR, whose decoder
// covers the unified Hangul extension.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cp949", "ms949", "uhc", "windows-949", "euc-kr", "euckr":
		return korean.EUCKR, nil
	case "utf-8", "utf8":
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown encoding %q", name)
	}
	return enc, nil
}
