// Package records keeps finished runs on disk through gdata.
package records

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/automoto/thief-arena/components"
	cfg "github.com/automoto/thief-arena/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const (
	runsKey = "runs"
	maxRuns = 20
)

// Outcome is how a run ended.
type Outcome string

const (
	Lost    Outcome = "lost"
	Cleared Outcome = "cleared"
	Victory Outcome = "victory"
)

// Run is one finished session.
type Run struct {
	Session      string    `json:"session"`
	Arena        string    `json:"arena"`
	Outcome      Outcome   `json:"outcome"`
	Kills        int       `json:"kills"`
	WavesCleared int       `json:"wavesCleared"`
	Seconds      float64   `json:"seconds"`
	At           time.Time `json:"at"`
}

// FromSession builds a run from the session singleton.
func FromSession(s components.SessionData, outcome Outcome, seconds float64) Run {
	return Run{
		Session:      s.ID,
		Arena:        s.Arena,
		Outcome:      outcome,
		Kills:        s.Kills,
		WavesCleared: s.WavesCleared,
		Seconds:      seconds,
		At:           time.Now().UTC(),
	}
}

// backend is the part of gdata.Manager the store needs.
type backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes run history. A nil *Store is valid and drops
// everything, which is what callers get when persistence is disabled.
type Store struct {
	items backend
}

// Open opens the gdata store named by cfg.Records.
func Open(c cfg.RecordsConfig) (*Store, error) {
	if !c.Enabled {
		return nil, nil
	}
	m, err := gdata.Open(gdata.Config{AppName: c.AppName})
	if err != nil {
		return nil, err
	}
	return &Store{items: m}, nil
}

// Runs returns the stored runs, newest first.
func (s *Store) Runs() ([]Run, error) {
	if s == nil {
		return nil, nil
	}
	data, err := s.items.LoadItem(runsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// SaveRun prepends r to the history, keeping the newest runs only.
func (s *Store) SaveRun(r Run) error {
	if s == nil {
		return nil
	}
	if r.Session == "" {
		return errors.New("records: run without a session id")
	}
	runs, err := s.Runs()
	if err != nil {
		// a corrupt history is replaced rather than blocking new runs
		zap.L().Warn("could not read run history", zap.Error(err))
		runs = nil
	}
	runs = append([]Run{r}, runs...)
	if len(runs) > maxRuns {
		runs = runs[:maxRuns]
	}
	data, err := json.Marshal(runs)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(runsKey, data); err != nil {
		return err
	}
	zap.L().Debug("run saved",
		zap.String("session", r.Session),
		zap.String("outcome", string(r.Outcome)))
	return nil
}

// Best returns the stored run with the most kills; ties go to the run that
// cleared more waves, then to the faster one.
func (s *Store) Best() (Run, bool, error) {
	runs, err := s.Runs()
	if err != nil || len(runs) == 0 {
		return Run{}, false, err
	}
	sort.SliceStable(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		if a.WavesCleared != b.WavesCleared {
			return a.WavesCleared > b.WavesCleared
		}
		return a.Seconds < b.Seconds
	})
	return runs[0], true, nil
}
