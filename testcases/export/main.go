// Command export writes test case definitions to JSON, for external
// reference renderers. Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/heatmap"
	"seehuhn.de/go/heatmap/testcases"
)

func main() {
	var out struct {
		CellSize  int            `json:"cell_size"`
		TestCases []jsonTestCase `json:"testcases"`
	}
	out.CellSize = heatmap.CellSize

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string     `json:"name"`
	Input  string     `json:"input"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	CTM    []float64  `json:"ctm,omitempty"`
	Cells  []jsonCell `json:"cells"`
}

type jsonCell struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Input:  tc.Input,
		Width:  tc.Width,
		Height: tc.Height,
		Cells:  []jsonCell{},
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	records := heatmap.Parse(tc.Input)
	maxCount, err := heatmap.MaxCount(records)
	if err != nil {
		return jtc // no cells
	}
	for _, rec := range records {
		c := heatmap.FrequencyToColor(heatmap.Frequency(rec.Count, maxCount))
		jtc.Cells = append(jtc.Cells, jsonCell{
			X:     rec.X,
			Y:     rec.Y,
			Count: rec.Count,
			Color: c.String(),
		})
	}
	return jtc
}
