package stats

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trias/pkg/ctdf"
)

type RecordResult string

const (
	RecordAdded     RecordResult = "added"
	RecordUpdated   RecordResult = "updated"
	RecordUnchanged RecordResult = "unchanged"
	RecordSkipped   RecordResult = "skipped"
)

// Store keeps one CSV file per departure date, each journey appears at most once per file
type Store struct {
	Directory string

	mutex sync.Mutex
}

func NewStore(directory string) *Store {
	return &Store{Directory: directory}
}

func (s *Store) FileName(date time.Time) string {
	return filepath.Join(s.Directory, fmt.Sprintf("%s.csv", date.Format(FileDateFormat)))
}

// Files lists the statistics files in the directory, ordered by name
func (s *Store) Files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(s.Directory, "*.csv"))
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Record adds the departure to the file for its scheduled date. A journey already present is
// only rewritten when the departure carries a delay.
func (s *Store) Record(departure *ctdf.Departure, stopRef string) (RecordResult, error) {
	results, err := s.RecordAll([]*ctdf.Departure{departure}, stopRef)
	if err != nil {
		return "", err
	}

	return results[0], nil
}

// RecordAll records the departures in order and writes every touched file once
func (s *Store) RecordAll(departures []*ctdf.Departure, stopRef string) ([]RecordResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	results := make([]RecordResult, len(departures))
	files := map[string][]*DepartureRecord{}
	changed := map[string]bool{}

	for i, departure := range departures {
		if !isRecordable(departure) {
			results[i] = RecordSkipped
			continue
		}

		fileName := s.FileName(departure.ScheduledDateTime)

		records, loaded := files[fileName]
		if !loaded {
			var err error
			records, err = ReadFile(fileName)
			if err != nil {
				return nil, err
			}
		}

		records, result, err := applyDeparture(records, departure, stopRef)
		if err != nil {
			return nil, err
		}

		files[fileName] = records
		results[i] = result

		if result == RecordAdded || result == RecordUpdated {
			changed[fileName] = true
		}

		log.Debug().Str("journey", departure.JourneyRef).Str("file", fileName).Str("result", string(result)).Msg("Recorded departure")
	}

	for fileName := range changed {
		if err := s.writeFile(fileName, files[fileName]); err != nil {
			return nil, err
		}
	}

	return results, nil
}

func applyDeparture(records []*DepartureRecord, departure *ctdf.Departure, stopRef string) ([]*DepartureRecord, RecordResult, error) {
	for _, record := range records {
		if record.JourneyRef != departure.JourneyRef {
			continue
		}

		if departure.DelayMinutes == nil {
			return records, RecordUnchanged, nil
		}

		record.setDelay(departure.DelayMinutes)

		return records, RecordUpdated, nil
	}

	record, err := newDepartureRecord(departure, stopRef)
	if err != nil {
		return nil, "", err
	}

	return append(records, record), RecordAdded, nil
}

// ReadFile returns the records in a statistics file, a missing or empty file has none
func ReadFile(fileName string) ([]*DepartureRecord, error) {
	records := []*DepartureRecord{}

	file, err := os.Open(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return records, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, &records); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil, fmt.Errorf("reading %s: %w", fileName, err)
	}

	return records, nil
}

func (s *Store) writeFile(fileName string, records []*DepartureRecord) error {
	if err := os.MkdirAll(s.Directory, 0755); err != nil {
		return err
	}

	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&records, file)
}
