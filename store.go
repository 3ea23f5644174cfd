package budget

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	periodsFile      = "periods.json"
	transactionsFile = "transactions.json"
)

// Store is the persistence gateway: it loads and saves the two record
// collections from a directory holding one JSON file per collection.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on the
// first save or bootstrap.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the directory the store reads from and writes to.
func (s *Store) Dir() string { return s.dir }

func (s *Store) periodsPath() string      { return filepath.Join(s.dir, periodsFile) }
func (s *Store) transactionsPath() string { return filepath.Join(s.dir, transactionsFile) }

// LoadPeriods reads the periods collection. A missing or unreadable file
// reports ErrStorageUnavailable, unparseable content reports ErrCorruptData.
func (s *Store) LoadPeriods() ([]BudgetPeriod, error) {
	content, err := os.ReadFile(s.periodsPath())
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", s.periodsPath(), errors.Join(ErrStorageUnavailable, err))
	}
	periods, err := DecodePeriods(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("invalid content in %q: %w", s.periodsPath(), errors.Join(ErrCorruptData, err))
	}
	return periods, nil
}

// LoadTransactions reads the transactions collection. Failure modes are the
// same as LoadPeriods.
func (s *Store) LoadTransactions() ([]Transaction, error) {
	content, err := os.ReadFile(s.transactionsPath())
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", s.transactionsPath(), errors.Join(ErrStorageUnavailable, err))
	}
	txs, err := DecodeTransactions(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("invalid content in %q: %w", s.transactionsPath(), errors.Join(ErrCorruptData, err))
	}
	return txs, nil
}

// SaveAll overwrites both collections as one logical write. Both files are
// first staged as temp files in the same directory, then moved into place.
// A failure while staging leaves the previous state untouched, so the two
// files never end up representing different logical snapshots.
func (s *Store) SaveAll(periods []BudgetPeriod, txs []Transaction) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, errors.Join(ErrStorageUnavailable, err))
	}

	var buf bytes.Buffer
	if err := EncodePeriods(&buf, periods); err != nil {
		return fmt.Errorf("could not encode periods: %w", errors.Join(ErrStorageUnavailable, err))
	}
	tmpPeriods, err := stage(s.dir, buf.Bytes())
	if err != nil {
		return fmt.Errorf("could not stage periods: %w", errors.Join(ErrStorageUnavailable, err))
	}

	buf.Reset()
	if err := EncodeTransactions(&buf, txs); err != nil {
		os.Remove(tmpPeriods)
		return fmt.Errorf("could not encode transactions: %w", errors.Join(ErrStorageUnavailable, err))
	}
	tmpTxs, err := stage(s.dir, buf.Bytes())
	if err != nil {
		os.Remove(tmpPeriods)
		return fmt.Errorf("could not stage transactions: %w", errors.Join(ErrStorageUnavailable, err))
	}

	// Both snapshots are staged, swap them in.
	if err := os.Rename(tmpPeriods, s.periodsPath()); err != nil {
		os.Remove(tmpPeriods)
		os.Remove(tmpTxs)
		return fmt.Errorf("could not replace %q: %w", s.periodsPath(), errors.Join(ErrStorageUnavailable, err))
	}
	if err := os.Rename(tmpTxs, s.transactionsPath()); err != nil {
		os.Remove(tmpTxs)
		return fmt.Errorf("could not replace %q: %w", s.transactionsPath(), errors.Join(ErrStorageUnavailable, err))
	}
	return nil
}

// stage writes content to a fresh temp file in dir and returns its path.
func stage(dir string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".budget-*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(name)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", err
	}
	return name, nil
}

// Bootstrap initializes any missing collection file as an empty collection,
// leaving an existing one untouched. It must run before the ledger is
// constructed so that a first run starts from a persisted empty state.
func (s *Store) Bootstrap() error {
	missingPeriods, err := missing(s.periodsPath())
	if err != nil {
		return err
	}
	missingTxs, err := missing(s.transactionsPath())
	if err != nil {
		return err
	}
	if !missingPeriods && !missingTxs {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", s.dir, errors.Join(ErrStorageUnavailable, err))
	}
	if missingPeriods {
		if err := writeEmpty(s.periodsPath(), func(f *os.File) error { return EncodePeriods(f, nil) }); err != nil {
			return err
		}
	}
	if missingTxs {
		if err := writeEmpty(s.transactionsPath(), func(f *os.File) error { return EncodeTransactions(f, nil) }); err != nil {
			return err
		}
	}
	return nil
}

func missing(path string) (bool, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not stat %q: %w", path, errors.Join(ErrStorageUnavailable, err))
	}
	return false, nil
}

func writeEmpty(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, errors.Join(ErrStorageUnavailable, err))
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("could not initialize %q: %w", path, errors.Join(ErrStorageUnavailable, err))
	}
	return nil
}
