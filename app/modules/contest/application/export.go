package contestservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StandingsWorkbook exports the current standings as an xlsx sheet, one row
// per artwork in rank order.
func (s *ContestService) StandingsWorkbook(ctx context.Context) ([]byte, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Standings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create standings sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Rank", "Artwork ID", "Total Score", "Votes"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, st := range standings {
		values := []interface{}{row + 1, st.ArtworkID, st.TotalScore, st.VoteCount}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write standings workbook: %w", err)
	}
	return buf.Bytes(), nil
}
