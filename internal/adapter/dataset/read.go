package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Temutjin2k/ride-analytics/internal/domain/types"
)

const utf8BOM = "\ufeff"

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrMalformedDataset, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

// readXLSX returns the rows of sheet along with the sheet name actually read.
func readXLSX(path, sheet string) ([][]string, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", types.ErrMalformedDataset, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("%w: workbook has no sheets", types.ErrMalformedDataset)
	}
	if sheet == "" {
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, sheet, fmt.Errorf("%w: sheet %q: %w", types.ErrMalformedDataset, sheet, err)
	}
	return rows, sheet, nil
}
