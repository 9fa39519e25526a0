// Package problemfile reads transportation problems from YAML or JSON files.
//
// A file either lists the three parts separately:
//
//	name: depots
//	supply: [30, 30]
//	demand: [10, 20, 30]
//	costs:
//	  - [4, 6, 8]
//	  - [5, 3, 9]
//
// or gives the whole input table, demand on the first row and supply in the
// first column:
//
//	table:
//	  - [~, 10, 20, 30]
//	  - [30, 4, 6, 8]
//	  - [30, 5, 3, 9]
//
// Cells may be numbers or strings such as "1/3"; they go through the cell
// parser so a file behaves exactly like the input form.
package problemfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/transport/core/model"
	"github.com/kilianp07/transport/core/parse"
)

// Cell is one raw table entry. Null and empty entries are kept as "".
type Cell string

// UnmarshalYAML accepts any scalar.
func (c *Cell) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cell must be a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		*c = ""
		return nil
	}
	*c = Cell(n.Value)
	return nil
}

// File is the on-disk layout of a problem.
type File struct {
	Name   string   `yaml:"name"`
	Supply []Cell   `yaml:"supply"`
	Demand []Cell   `yaml:"demand"`
	Costs  [][]Cell `yaml:"costs"`
	Table  [][]Cell `yaml:"table"`
}

// Load reads the problem at path with the default cell precision.
func Load(path string) (model.Problem, error) {
	return LoadWith(path, parse.Parser{})
}

// LoadWith reads the problem at path converting cells with p.
func LoadWith(path string, p parse.Parser) (model.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Problem{}, err
	}
	prob, err := Decode(bytes.NewReader(data), p)
	if err != nil {
		return model.Problem{}, fmt.Errorf("%s: %w", path, err)
	}
	return prob, nil
}

// Decode reads one problem from r. JSON input is accepted as YAML.
func Decode(r io.Reader, p parse.Parser) (model.Problem, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Problem{}, errors.New("empty problem file")
		}
		return model.Problem{}, err
	}
	return f.Problem(p)
}

// Problem converts the raw cells.
func (f File) Problem(p parse.Parser) (model.Problem, error) {
	var (
		prob model.Problem
		err  error
	)
	if len(f.Table) > 0 {
		if len(f.Supply) > 0 || len(f.Demand) > 0 || len(f.Costs) > 0 {
			return model.Problem{}, errors.New("use either table or supply/demand/costs, not both")
		}
		prob, err = p.Grid(matrix(f.Table))
	} else {
		prob, err = p.Problem(cellStrings(f.Supply), cellStrings(f.Demand), matrix(f.Costs))
	}
	if err != nil {
		return model.Problem{}, err
	}
	prob.Name = f.Name
	return prob, nil
}

func cellStrings(cells []Cell) []string {
	out := make([]string, len(cells))
	for k, c := range cells {
		out[k] = string(c)
	}
	return out
}

func matrix(rows [][]Cell) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = cellStrings(r)
	}
	return out
}
