package mapio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flowlab-data/spread.report/datamap"
)

// setField assigns one named sample value on a cell.
func setField(cell *datamap.Cell, field string, v float64) error {
	switch field {
	case FieldX:
		cell.X = v
	case FieldY:
		cell.Y = v
	case FieldN:
		cell.N = int(v)
	case FieldT:
		cell.T = v
	case FieldM:
		cell.M = v
	case FieldU:
		cell.U = v
	case FieldV:
		cell.V = v
	default:
		return fmt.Errorf("field %q: %w", field, ErrBadHeader)
	}
	return nil
}

func getField(cell *datamap.Cell, field string) float64 {
	switch field {
	case FieldX:
		return cell.X
	case FieldY:
		return cell.Y
	case FieldN:
		return float64(cell.N)
	case FieldT:
		return cell.T
	case FieldM:
		return cell.M
	case FieldU:
		return cell.U
	case FieldV:
		return cell.V
	}
	return 0
}

// ReadText reads a plain-text data map: a header line of field symbols
// followed by one whitespace-separated row of values per cell, in
// header order. Fields absent from the header are left zero. The
// samples come back in the file's own order, which FromSamples then
// interprets.
func ReadText(r io.Reader) ([]datamap.Cell, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("empty file: %w", ErrBadHeader)
	}

	header := strings.Fields(strings.ToUpper(scanner.Text()))
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header line: %w", ErrBadHeader)
	}
	var probe datamap.Cell
	for _, field := range header {
		if err := setField(&probe, field, 0); err != nil {
			return nil, err
		}
	}

	var cells []datamap.Cell
	line := 1
	for scanner.Scan() {
		line++
		values := strings.Fields(scanner.Text())
		if len(values) == 0 {
			continue
		}
		if len(values) != len(header) {
			return nil, fmt.Errorf("line %d: %d values for %d header fields: %w",
				line, len(values), len(header), ErrBadRecord)
		}

		var cell datamap.Cell
		for i, raw := range values {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, field %s: %w", line, header[i], err)
			}
			setField(&cell, header[i], v)
		}
		cells = append(cells, cell)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data map: %w", err)
	}
	return cells, nil
}

// WriteText writes cells as a plain-text data map with the kind's
// fields in canonical order. Cells are written in the order given, so a
// grid flattened to the canonical raster order round-trips through
// ReadText unchanged up to formatting precision.
func WriteText(w io.Writer, cells []datamap.Cell, kind MapKind) error {
	bw := bufio.NewWriter(w)
	fields := kind.Fields()

	if _, err := bw.WriteString(strings.Join(fields, " ") + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range cells {
		for j, field := range fields {
			if j > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return fmt.Errorf("write data map: %w", err)
				}
			}
			if _, err := fmt.Fprintf(bw, "%f", getField(&cells[i], field)); err != nil {
				return fmt.Errorf("write data map: %w", err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write data map: %w", err)
		}
	}
	return bw.Flush()
}
