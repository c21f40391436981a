package graph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a stacked graph as written by hand or exported by a host: node
// labels are 1-based, endpoints are 0-based layer start offsets.
type Document struct {
	NodeCount int        `yaml:"nodeCount" json:"nodeCount"`
	Netsize   *int       `yaml:"netsize,omitempty" json:"netsize,omitempty"`
	Endpoints []int      `yaml:"endpoints,omitempty" json:"endpoints,omitempty"`
	Edges     []EdgePair `yaml:"edges" json:"edges"`
}

// EdgePair is one 1-based source/target row of a Document.
type EdgePair struct {
	Source int `yaml:"source" json:"source"`
	Target int `yaml:"target" json:"target"`
}

// Columns splits the edge rows into parallel source and target arrays.
func (d *Document) Columns() (source, target []int) {
	source = make([]int, len(d.Edges))
	target = make([]int, len(d.Edges))
	for i, e := range d.Edges {
		source[i], target[i] = e.Source, e.Target
	}
	return source, target
}

// LoadDocument reads a YAML (.yml, .yaml) or CSV (.csv) graph document.
// When the document omits nodeCount it is inferred from the largest label.
func LoadDocument(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		doc, err = ParseYAMLDocument(f)
	case ".csv":
		doc, err = ParseCSVDocument(f)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrBadDocument, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ParseYAMLDocument decodes a YAML graph document.
func ParseYAMLDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	doc.inferNodeCount()
	return &doc, nil
}

// ParseCSVDocument reads "source,target" rows. A header row is optional.
func ParseCSVDocument(r io.Reader) (*Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var doc Document
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		if line == 1 && strings.EqualFold(rec[0], "source") && strings.EqualFold(rec[1], "target") {
			continue
		}
		s, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: source %q: %v", ErrBadDocument, line, rec[0], err)
		}
		t, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: target %q: %v", ErrBadDocument, line, rec[1], err)
		}
		doc.Edges = append(doc.Edges, EdgePair{Source: s, Target: t})
	}
	doc.inferNodeCount()
	return &doc, nil
}

func (d *Document) inferNodeCount() {
	if d.NodeCount > 0 {
		return
	}
	for _, e := range d.Edges {
		d.NodeCount = max(d.NodeCount, e.Source, e.Target)
	}
}
