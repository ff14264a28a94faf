package ingestion

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sample article rows used by WriteSampleWorkbook. Dates are filled in
// relative to "now" at write time, newest first.
var sampleTitles = []string{
	"Robinhood Markets, Inc. to Announce Third Quarter Results",
	"Robinhood Shares Are Trading Higher Today: What You Need To Know",
	"Robinhood Markets, Inc. to Present at Goldman Sachs Conference",
	"Robinhood: Five Reasons The Financial Platform Is Still the Best",
	"Robinhood app purchase to sustain healthy competition",
}

var sampleSources = []string{
	"Benzinga",
	"Yahoo Finance",
	"Reuters",
	"Bloomberg",
	"CNBC",
}

var sampleLinks = []string{
	"https://www.benzinga.com/news/robinhood-markets-announce-third-quarter-results",
	"https://finance.yahoo.com/news/robinhood-shares-trading-higher-today",
	"https://www.reuters.com/technology/robinhood-markets-present-goldman-sachs-conference",
	"https://www.bloomberg.com/news/articles/robinhood-five-reasons-financial-platform-best",
	"https://www.cnbc.com/robinhood-app-purchase-sustain-healthy-competition",
}

var sampleDescriptions = []string{
	"Robinhood Markets, Inc. (NASDAQ: HOOD) has announced that it will release its third quarter financial results after market close. An earnings conference call will be held at 2:00 PM PT / 5:00 PM ET on the same day.",
	"Robinhood Markets, Inc. (NASDAQ:HOOD) shares are on the rise Monday amid possible optimism ahead of the Fed discussion. What Happened: investors are assessing the broader market impact before the announcement.",
	"Robinhood Markets, Inc. today announced that it will be participating in the upcoming Goldman Sachs Communacopia + Technology Conference.",
	"In today's ever-changing financial landscape, the pursuit of wealth through investment can be both tantalizing and daunting. But technological advancements in recent years have ushered in a new era of accessibility.",
	"The on-demand delivery sector should see healthy competition with the Robinhood food delivery app remaining in the market, say industry observers.",
}

// WriteSampleWorkbook creates a five-row sample workbook at path. With
// withSourceLink false, only the Date/Title/Description columns are written
// (the minimal sheet variant).
func WriteSampleWorkbook(path string, withSourceLink bool) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)

	headers := []string{"Date", "Title", "Description"}
	if withSourceLink {
		headers = []string{"Date", "Source", "Title", "Link", "Description"}
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	now := time.Now()
	for row := 0; row < len(sampleTitles); row++ {
		date := now.AddDate(0, 0, -row).Format("2006-01-02")

		values := []string{date, sampleTitles[row], sampleDescriptions[row]}
		if withSourceLink {
			values = []string{date, sampleSources[row], sampleTitles[row], sampleLinks[row], sampleDescriptions[row]}
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to compute data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save sample workbook %s: %w", path, err)
	}
	return nil
}
