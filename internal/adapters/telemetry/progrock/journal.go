package progrock

import (
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/fanout/internal/core/ports"
)

var _ progrock.Writer = (*Journal)(nil)

// Journal is a progrock.Writer that reports every completed vertex once
// through the logger. Failed vertexes are left to the caller, which reports
// the build error. Loggers implementing ports.UnitReporter receive the
// target and path of grouped vertexes separately.
type Journal struct {
	logger ports.Logger

	mu       sync.Mutex
	reported map[string]struct{}
}

// NewJournal creates a Journal logging to logger.
func NewJournal(logger ports.Logger) *Journal {
	return &Journal{
		logger:   logger,
		reported: make(map[string]struct{}),
	}
}

// WriteStatus implements progrock.Writer.
func (j *Journal) WriteStatus(update *progrock.StatusUpdate) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if _, ok := j.reported[v.Id]; ok {
			continue
		}
		j.reported[v.Id] = struct{}{}

		if v.Error != nil {
			continue
		}
		j.report(v.Name, v.Cached)
	}
	return nil
}

func (j *Journal) report(name string, cached bool) {
	if units, ok := j.logger.(ports.UnitReporter); ok {
		if target, path, grouped := strings.Cut(name, groupSeparator); grouped {
			units.Unit(target, path, cached)
			return
		}
	}
	if cached {
		name += " (unchanged)"
	}
	j.logger.Info(name)
}

// Close implements progrock.Writer.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	clear(j.reported)
	return nil
}
