package stats

import (
	"path/filepath"

	"golang.org/x/exp/slices"
)

type LineCount struct {
	Line  string
	Count int
}

type Summary struct {
	File string

	Total int
	Lines []LineCount

	DelayCount   int
	AverageDelay float64
	MaxDelay     int
	MinDelay     int
}

// Summarise reads a statistics file and aggregates it per line, delay figures only cover
// journeys with a known delay
func Summarise(fileName string) (*Summary, error) {
	records, err := ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		File:  filepath.Base(fileName),
		Total: len(records),
		Lines: []LineCount{},
	}

	lineCounts := map[string]int{}
	var delays []int

	for _, record := range records {
		lineCounts[record.Line]++

		if delay, ok := record.KnownDelay(); ok {
			delays = append(delays, delay)
		}
	}

	var lines []string
	for line := range lineCounts {
		lines = append(lines, line)
	}
	slices.Sort(lines)

	for _, line := range lines {
		summary.Lines = append(summary.Lines, LineCount{Line: line, Count: lineCounts[line]})
	}

	if len(delays) > 0 {
		total := 0
		for _, delay := range delays {
			total += delay
		}

		summary.DelayCount = len(delays)
		summary.AverageDelay = float64(total) / float64(len(delays))
		summary.MaxDelay = slices.Max(delays)
		summary.MinDelay = slices.Min(delays)
	}

	return summary, nil
}
