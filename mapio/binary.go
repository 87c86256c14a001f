package mapio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/flowlab-data/spread.report/datamap"
)

// binaryRecordSize is the packed size of one cell: seven little-endian
// float32 values in the fixed order X Y N T M U V.
const binaryRecordSize = 7 * 4

// ReadBinary reads a packed data map: consecutive fixed-order records
// with no header. A stream whose length is not a whole number of
// records fails with ErrBadRecord.
func ReadBinary(r io.Reader) ([]datamap.Cell, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data map: %w", err)
	}
	if len(raw)%binaryRecordSize != 0 {
		return nil, fmt.Errorf("%d bytes is not a whole number of %d-byte records: %w",
			len(raw), binaryRecordSize, ErrBadRecord)
	}

	cells := make([]datamap.Cell, len(raw)/binaryRecordSize)
	for i := range cells {
		rec := raw[i*binaryRecordSize:]
		at := func(j int) float64 {
			return float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[j*4:])))
		}
		cells[i] = datamap.Cell{
			X: at(0), Y: at(1),
			N: int(at(2)),
			T: at(3), M: at(4),
			U: at(5), V: at(6),
		}
	}
	return cells, nil
}

// WriteBinary writes cells as packed fixed-order records in the order
// given.
func WriteBinary(w io.Writer, cells []datamap.Cell) error {
	buf := make([]byte, binaryRecordSize)
	for i := range cells {
		cell := &cells[i]
		for j, v := range [7]float64{
			cell.X, cell.Y, float64(cell.N), cell.T, cell.M, cell.U, cell.V,
		} {
			binary.LittleEndian.PutUint32(buf[j*4:], math.Float32bits(float32(v)))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write data map: %w", err)
		}
	}
	return nil
}
