package dataset

import (
	"sync"

	"go.uber.org/zap"
)

// Store memoizes one Dataset per process. The first Dataset call performs
// the load; later calls return the same value without touching disk.
type Store struct {
	path   string
	logger *zap.Logger

	once sync.Once
	ds   *Dataset
	err  error
}

func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Dataset returns the memoized dataset, loading it on first use.
func (s *Store) Dataset() (*Dataset, error) {
	s.once.Do(func() {
		s.ds, s.err = Load(s.path)
		if s.err != nil {
			s.logger.Error("dataset load failed", zap.String("path", s.path), zap.Error(s.err))
			return
		}
		if s.ds.Source == "synthetic" {
			s.logger.Warn("dataset file missing, generated sample data",
				zap.String("path", s.path),
				zap.Int("records", s.ds.Len()))
		} else {
			s.logger.Info("dataset loaded",
				zap.String("path", s.path),
				zap.Int("records", s.ds.Len()))
		}
	})
	return s.ds, s.err
}
