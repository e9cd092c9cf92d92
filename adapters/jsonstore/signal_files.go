package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"lifelens/domain/signal"
	"lifelens/internal/config"
	"lifelens/internal/errors"
	"lifelens/ports"
)

// TransactionReader loads transactions from a spreadsheet export. Wired in
// when a spreadsheet path is configured; otherwise transactions come from the
// JSON file like every other domain.
type TransactionReader interface {
	ReadFile(path string) ([]signal.Transaction, error)
}

// SignalFiles implements SignalSource over the JSON exports in the data
// directory. The three domains load concurrently; a missing file means the
// domain simply has no data yet.
type SignalFiles struct {
	cfg   config.DataConfig
	excel TransactionReader
}

// NewSignalFiles creates a file-backed signal source. The excel reader may be
// nil when no spreadsheet import is configured.
func NewSignalFiles(cfg config.DataConfig, excel TransactionReader) ports.SignalSource {
	return &SignalFiles{cfg: cfg, excel: excel}
}

// Load reads all signal domains from disk
func (s *SignalFiles) Load(ctx context.Context) (*ports.SignalBundle, error) {
	bundle := &ports.SignalBundle{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := s.loadTransactions()
		if err != nil {
			return errors.SignalLoadError("transaction", err)
		}
		bundle.Transactions = txs
		return nil
	})
	g.Go(func() error {
		if err := readJSONFile(filepath.Join(s.cfg.Dir, s.cfg.WatchFile), &bundle.WatchDays); err != nil {
			return errors.SignalLoadError("wearable", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := readJSONFile(filepath.Join(s.cfg.Dir, s.cfg.VideoFile), &bundle.VideoDays); err != nil {
			return errors.SignalLoadError("video", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if bundle.Transactions == nil {
		bundle.Transactions = []signal.Transaction{}
	}
	if bundle.WatchDays == nil {
		bundle.WatchDays = []signal.WearableDay{}
	}
	if bundle.VideoDays == nil {
		bundle.VideoDays = []signal.VideoDay{}
	}
	return bundle, nil
}

func (s *SignalFiles) loadTransactions() ([]signal.Transaction, error) {
	if s.cfg.ExcelFile != "" && s.excel != nil {
		return s.excel.ReadFile(s.cfg.ExcelFile)
	}
	var txs []signal.Transaction
	if err := readJSONFile(filepath.Join(s.cfg.Dir, s.cfg.TransactionsFile), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// readJSONFile decodes a JSON file into out. A missing or empty file leaves
// out untouched.
func readJSONFile(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}
