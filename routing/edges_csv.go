package routing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/twinsim/twin"
)

// LoadEdgesCSV reads a road-graph edge list into graph: one row per edge,
// edge_id:u32, from:u32, to:u32, length_meters:f64. Road-graph construction
// is out of scope for the core (spec.md §1); this is a minimal reference
// loader so the CLI can run end to end against a graph file instead of a
// hand-built Graph.
func LoadEdgesCSV(r io.Reader, graph *Graph) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4

	rowIdx := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("edges csv: error reading row %d: %w", rowIdx, err)
		}

		id, err := strconv.ParseUint(record[0], 10, 32)
		if err != nil {
			return fmt.Errorf("edges csv: row %d: invalid edge_id %q: %w", rowIdx, record[0], err)
		}
		from, err := strconv.ParseUint(record[1], 10, 32)
		if err != nil {
			return fmt.Errorf("edges csv: row %d: invalid from %q: %w", rowIdx, record[1], err)
		}
		to, err := strconv.ParseUint(record[2], 10, 32)
		if err != nil {
			return fmt.Errorf("edges csv: row %d: invalid to %q: %w", rowIdx, record[2], err)
		}
		length, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return fmt.Errorf("edges csv: row %d: invalid length_meters %q: %w", rowIdx, record[3], err)
		}

		graph.AddEdge(twin.EdgeId(id), twin.NodeId(from), twin.NodeId(to), length, nil)
		rowIdx++
	}
	return nil
}
