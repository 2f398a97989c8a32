package schema

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnlib"
)

// SynonymsSeparator separates synonyms in the persisted column.
const SynonymsSeparator = ","

// Synonyms is an ordered list of alternative names. It is
// stored as one comma-separated text column, an empty list
// is stored as NULL.
type Synonyms []string

// ParseSynonyms splits a comma-separated list. Items are trimmed,
// empty items are dropped and broken UTF-8 is repaired.
func ParseSynonyms(s string) Synonyms {
	var res Synonyms
	for _, v := range strings.Split(s, SynonymsSeparator) {
		v = strings.TrimSpace(gnlib.FixUtf8(v))
		if v == "" {
			continue
		}
		res = append(res, v)
	}
	return res
}

// String joins synonyms into their persisted form.
func (s Synonyms) String() string {
	return strings.Join(s, SynonymsSeparator)
}

// GormDataType makes GORM create a text column.
func (Synonyms) GormDataType() string {
	return "string"
}

// Value implements driver.Valuer. It refuses items that would not
// come back unchanged from Scan.
func (s Synonyms) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	for i, v := range s {
		if err := checkSynonym(v); err != nil {
			return nil, fmt.Errorf("synonym %d (%q): %w", i, v, err)
		}
	}
	return s.String(), nil
}

func checkSynonym(v string) error {
	switch {
	case strings.TrimSpace(v) == "":
		return errors.New("blank synonym")
	case strings.TrimSpace(v) != v:
		return errors.New("synonym has surrounding whitespace")
	case strings.Contains(v, SynonymsSeparator):
		return fmt.Errorf("synonym contains separator %q", SynonymsSeparator)
	case !utf8.ValidString(v):
		return errors.New("synonym is not valid UTF-8")
	}
	return nil
}

// Scan implements sql.Scanner.
func (s *Synonyms) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
	case string:
		*s = ParseSynonyms(v)
	case []byte:
		*s = ParseSynonyms(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Synonyms", src)
	}
	return nil
}
