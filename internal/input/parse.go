// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Format names an input encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// document is the keyed shape shared by JSON, YAML and TOML.
type document struct {
	Matrix [][]*float64 `json:"matrix" yaml:"matrix" toml:"matrix"`
}

// FormatFromPath picks the encoding from a file extension; anything
// unrecognised is read as text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	default:
		return Text
	}
}

// ParseFile reads path using the encoding implied by its extension.
func ParseFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := Parse(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// Parse reads a matrix from r in the given encoding and validates it as a
// non-empty rectangular grid of finite numbers.
func Parse(r io.Reader, format Format) ([][]float64, error) {
	var (
		rows [][]float64
		err  error
	)
	switch format {
	case Text, "":
		rows, err = parseText(r)
	case JSON:
		rows, err = parseJSON(r)
	case YAML:
		rows, err = parseYAML(r)
	case TOML:
		rows, err = parseTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateRows(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseText(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row, err := parseLine(text, len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseLine(text string, row int) ([]float64, error) {
	var cells []string
	if strings.Contains(text, ",") {
		cells = strings.Split(text, ",")
	} else {
		cells = strings.Fields(text)
	}

	out := make([]float64, len(cells))
	for j, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, cellErr(row, j, ErrBlankCell)
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, cellErr(row, j, fmt.Errorf("%w: %q", ErrNotNumber, cell))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, cellErr(row, j, matrix.ErrNaNInf)
		}
		out[j] = v
	}
	return out, nil
}

func parseJSON(r io.Reader) ([][]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var cells [][]*float64
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		err = json.Unmarshal(data, &cells)
	} else {
		var doc document
		err = json.Unmarshal(data, &doc)
		cells = doc.Matrix
	}
	if err != nil {
		return nil, fmt.Errorf("input: json: %w", err)
	}
	return fromCells(cells)
}

func parseYAML(r io.Reader) ([][]float64, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if err == io.EOF {
			return nil, matrix.ErrEmpty
		}
		return nil, fmt.Errorf("input: yaml: %w", err)
	}

	var cells [][]*float64
	var err error
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
		err = node.Decode(&cells)
	} else {
		var doc document
		err = node.Decode(&doc)
		cells = doc.Matrix
	}
	if err != nil {
		return nil, fmt.Errorf("input: yaml: %w", err)
	}
	return fromCells(cells)
}

func parseTOML(r io.Reader) ([][]float64, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("input: toml: %w", err)
	}
	return fromCells(doc.Matrix)
}

// fromCells dereferences decoded cells, reporting the first nil as blank.
func fromCells(cells [][]*float64) ([][]float64, error) {
	rows := make([][]float64, len(cells))
	for i, rc := range cells {
		rows[i] = make([]float64, len(rc))
		for j, p := range rc {
			if p == nil {
				return nil, cellErr(i, j, ErrBlankCell)
			}
			if math.IsNaN(*p) || math.IsInf(*p, 0) {
				return nil, cellErr(i, j, matrix.ErrNaNInf)
			}
			rows[i][j] = *p
		}
	}
	return rows, nil
}
