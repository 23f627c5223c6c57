// ABOUTME: Badger-backed rolling history of daily habit check-ins.
// ABOUTME: Date-keyed entries; key order gives ascending dates for free.
package habit

import (
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

const keyPrefix = "habit:"

// Store is a bounded, date-keyed history of habit check-ins.
// Writing an existing date replaces that entry, so the history holds at
// most one entry per calendar date.
type Store struct {
	db *badger.DB
}

// OpenStore opens or creates the habit history at the given directory.
func OpenStore(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open habit store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordToday replaces today's entry with a new check-in. This is the only
// mutation path; historical dates are never edited.
func (s *Store) RecordToday(checked, mood int) (HabitDay, error) {
	if checked < 0 || checked > len(Habits) {
		return HabitDay{}, fmt.Errorf("checked count %d out of range [0,%d]", checked, len(Habits))
	}
	if mood < 1 || mood > 10 {
		return HabitDay{}, fmt.Errorf("mood %d out of range [1,10]", mood)
	}

	day := NewHabitDay(time.Now().Format("2006-01-02"), checked, mood)
	if err := s.put(day); err != nil {
		return HabitDay{}, err
	}
	return day, nil
}

// Window returns the last n entries in ascending date order. If fewer than
// n exist, all are returned.
func (s *Store) Window(n int) ([]HabitDay, error) {
	all, err := s.list()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

// Seed writes synthetic entries for the past `days` days when the store is
// empty, for bootstrap trend display. Today's date is never seeded, so the
// first real check-in cannot collide with demo data.
func (s *Store) Seed(days int) error {
	existing, err := s.list()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now()
	for i := days; i >= 1; i-- {
		d := now.AddDate(0, 0, -i)
		// Deterministic but varied demo values.
		checked := (i * 3) % (len(Habits) + 1)
		mood := 4 + (i*5)%6
		day := NewHabitDay(d.Format("2006-01-02"), checked, mood)
		if err := s.put(day); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) put(day HabitDay) error {
	data, err := json.Marshal(day)
	if err != nil {
		return fmt.Errorf("marshal habit day: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+day.Date), data)
	})
	if err != nil {
		return fmt.Errorf("write habit day: %w", err)
	}
	return nil
}

func (s *Store) list() ([]HabitDay, error) {
	var days []HabitDay
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var day HabitDay
				if err := json.Unmarshal(val, &day); err != nil {
					return fmt.Errorf("unmarshal habit day: %w", err)
				}
				days = append(days, day)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list habit days: %w", err)
	}
	return days, nil
}
