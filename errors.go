package treeml

import "fmt"

var (
	// Base error; every error in treeml inherits from this
	Err = fmt.Errorf("treeml error")

	ErrParse         = fmt.Errorf("toml parse error (%w)", Err)
	ErrEncode        = fmt.Errorf("encoding error (%w)", Err)
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
	ErrInvalidNode   = fmt.Errorf("invalid node (%w)", Err)
	ErrMissingFile   = fmt.Errorf("missing file (%w)", Err)
)
