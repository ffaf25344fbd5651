package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// GenreList is an ordered list of genre tags. It is stored as a single
// comma-joined string column; the encoding never leaves this type.
type GenreList []string

func (g GenreList) Value() (driver.Value, error) {
	return strings.Join(g, ","), nil
}

func (g *GenreList) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*g = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into GenreList", src)
	}

	if s == "" {
		*g = GenreList{}
		return nil
	}
	*g = GenreList(strings.Split(s, ","))
	return nil
}
