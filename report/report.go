/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package report renders grading output: a markdown summary table of rubric
// scores for humans, and structured JSON dumps of the execution record and
// scores for anything downstream.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/agentgrade/agentgrade/grader"
	"github.com/agentgrade/agentgrade/trace"
)

// Passed reports whether every rubric score passed. An empty score list
// counts as passed: nothing was evaluated, nothing failed.
func Passed(scores []grader.Score) bool {
	for _, s := range scores {
		if !s.Pass {
			return false
		}
	}
	return true
}

// WriteTable renders the rubric scores as a markdown table.
func WriteTable(w io.Writer, scores []grader.Score) error {
	table := newStandardTable([]string{"Rubric", "Score", "Threshold", "Status", "Result"}, w)

	for _, s := range scores {
		verdict := "FAIL"
		if s.Pass {
			verdict = "PASS"
		}
		if err := table.Append([]string{
			string(s.Rubric),
			fmt.Sprintf("%.1f", s.Score),
			fmt.Sprintf("%.1f", s.Threshold),
			string(s.Status),
			verdict,
		}); err != nil {
			return fmt.Errorf("appending table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering score table: %w", err)
	}

	if _, err := fmt.Fprintf(w, "\nOverall: %s\n", overall(scores)); err != nil {
		return err
	}
	return nil
}

// WriteJSON dumps the execution record and the rubric scores as one
// indented JSON document.
func WriteJSON(w io.Writer, record *trace.ExecutionRecord, scores []grader.Score) error {
	out := struct {
		Record *trace.ExecutionRecord `json:"execution_record"`
		Scores []grader.Score         `json:"rubric_scores"`
		Passed bool                   `json:"passed"`
	}{
		Record: record,
		Scores: scores,
		Passed: Passed(scores),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding report JSON: %w", err)
	}
	return nil
}

func overall(scores []grader.Score) string {
	if Passed(scores) {
		return "PASS"
	}
	return "FAIL"
}

// newStandardTable creates a table writer with the formatting used across
// all grading reports.
func newStandardTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		MaxWidth: 100,
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
