// Package flatfile implements the pipe-delimited record files that back
// every catalog. One record per line, fields joined by '|', no header and
// no escaping. A file that cannot be opened for reading behaves exactly
// like an empty one.
package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Codec maps records of a single entity type onto pipe-delimited lines.
type Codec[T any] interface {
	// ID returns the record's unique identifier.
	ID(record T) int
	// Parse builds a record from the split fields of one line. It reports
	// false when a required field is missing or fails numeric parsing;
	// such lines are skipped.
	Parse(fields []string) (T, bool)
	// Encode returns the record's fields in file order.
	Encode(record T) []string
}

// Store is a flat-file record store for one entity type.
type Store[T any] struct {
	path   string
	entity string
	codec  Codec[T]
}

// New returns a store backed by the file at path. The entity name is used
// only for logging.
func New[T any](path, entity string, codec Codec[T]) *Store[T] {
	return &Store[T]{path: path, entity: entity, codec: codec}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// Load reads every record from the backing file. Empty lines and lines
// the codec rejects are skipped; loading always continues with the next
// line. A file that does not exist or cannot be opened yields an empty
// list and no error.
func (s *Store[T]) Load() ([]T, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("entity", s.entity).Warn("store unreadable, treating as empty")
		}
		return nil, nil
	}
	defer f.Close()

	var list []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		record, ok := s.codec.Parse(strings.Split(line, "|"))
		if !ok {
			log.WithFields(log.Fields{"entity": s.entity, "line": line}).Debug("skipping malformed line")
			continue
		}
		list = append(list, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return list, nil
}

// Save rewrites the backing file with the given records. When the list
// contains duplicate ids only the first occurrence is kept; records are
// written in ascending id order.
func (s *Store[T]) Save(records []T) error {
	unique := make(map[int]T, len(records))
	ids := make([]int, 0, len(records))
	for _, r := range records {
		id := s.codec.ID(r)
		if _, seen := unique[id]; seen {
			continue
		}
		unique[id] = r
		ids = append(ids, id)
	}
	sort.Ints(ids)

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	w := bufio.NewWriter(f)
	for _, id := range ids {
		w.WriteString(strings.Join(s.codec.Encode(unique[id]), "|"))
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return f.Close()
}

// NextID returns one more than the highest identifier currently on disk,
// or 1 for an empty or absent file. The id is re-derived from file
// contents on every call; there is no in-memory counter and no locking
// against concurrent writers.
func (s *Store[T]) NextID() (int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return 1, nil
	}
	defer f.Close()

	maxID := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		idStr, _, _ := strings.Cut(line, "|")
		id, ok := ParseInt(idStr)
		if !ok {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("read %s: %w", s.path, err)
	}
	return maxID + 1, nil
}
