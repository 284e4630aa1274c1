package treeml

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// CompareResult holds the unified diff between two converted documents.
type CompareResult struct {
	File1  string
	File2  string
	Format string
	Diff   string
}

// Compare parses two TOML files, renders both in the given output format,
// and returns a unified diff of the results.
func Compare(file1, file2, format string) (*CompareResult, error) {
	output1, err := outputFile(file1, format)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", file1, err)
	}

	output2, err := outputFile(file2, format)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", file2, err)
	}

	return diffOutputs(file1, file2, format, output1, output2), nil
}

// CompareBytes is [Compare] for in-memory documents; name1 and name2 are
// used for diagnostics and diff headers only.
func CompareBytes(name1, name2 string, src1, src2 []byte, format string) (*CompareResult, error) {
	output1, err := outputBytes(name1, src1, format)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", name1, err)
	}

	output2, err := outputBytes(name2, src2, format)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", name2, err)
	}

	return diffOutputs(name1, name2, format, output1, output2), nil
}

func diffOutputs(name1, name2, format string, output1, output2 []byte) *CompareResult {
	edits := myers.ComputeEdits(span.URIFromPath(name1), string(output1), string(output2))
	unified := fmt.Sprint(gotextdiff.ToUnified(name1, name2, string(output1), edits))

	return &CompareResult{
		File1:  name1,
		File2:  name2,
		Format: format,
		Diff:   unified,
	}
}

func outputFile(path, format string) ([]byte, error) {
	t, err := ParseTOMLFile(path)
	if err != nil {
		return nil, err
	}

	return t.Output(format)
}

func outputBytes(name string, src []byte, format string) ([]byte, error) {
	t, err := ParseTOMLNamed(name, src)
	if err != nil {
		return nil, err
	}

	return t.Output(format)
}
