// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-explorer/pkg/types"
)

// QueryFile is the on-disk representation of a search and its results, so a
// search can be reviewed later without querying arXiv again.
type QueryFile struct {
	Query   QueryParams         `yaml:"query"`
	Route   Route               `yaml:"route"`
	Ranked  bool                `yaml:"ranked"`
	Results []types.ScoredPaper `yaml:"results"`
	Summary QuerySummary        `yaml:"summary"`
}

// QueryParams stores the criteria in a serializable form.
type QueryParams struct {
	Keywords string `yaml:"keywords,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Category string `yaml:"category,omitempty"`
	Limit    int    `yaml:"limit,omitempty"`
}

// QuerySummary stores result statistics and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves criteria and results to a YAML file.
func WriteQueryFile(path string, c Criteria, out SearchOutput) error {
	qf := QueryFile{
		Query: QueryParams{
			Keywords: c.Keywords,
			Author:   c.Author,
			Category: c.Category,
			Limit:    c.Limit,
		},
		Route:   out.Route,
		Ranked:  out.Ranked,
		Results: out.Results,
		Summary: QuerySummary{
			Total:     len(out.Results),
			Timestamp: time.Now().UTC(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

// ToCriteria converts stored QueryParams back into Criteria.
func (p QueryParams) ToCriteria() Criteria {
	return Criteria{
		Keywords: p.Keywords,
		Author:   p.Author,
		Category: p.Category,
		Limit:    p.Limit,
	}
}

// Output rebuilds the SearchOutput saved in the file.
func (qf *QueryFile) Output() SearchOutput {
	return SearchOutput{Route: qf.Route, Ranked: qf.Ranked, Results: qf.Results}
}
