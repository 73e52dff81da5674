package sample

import (
	"go.uber.org/zap"
)

// Group bundles the samples of one project with shared parameters.
type Group struct {
	Items  []*Item
	Params Params

	logger *zap.Logger
}

// NewGroup creates a group over the given items.
func NewGroup(items []*Item, params Params) *Group {
	return &Group{
		Items:  items,
		Params: params,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and warning messages.
func (g *Group) SetLogger(l *zap.Logger) {
	g.logger = l
}

// RunAll analyzes every sample, parallelized at sample granularity. The
// parameters are validated once up front: a bad configuration fails
// before any sample is touched. Per-sample failures are logged and the
// remaining samples still run; the first failure is returned.
func (g *Group) RunAll(workers int) error {
	if err := g.Params.Validate(); err != nil {
		return err
	}

	items := make(chan workItem, len(g.Items))
	go func() {
		defer close(items)
		for i, item := range g.Items {
			items <- workItem{seq: i, item: item}
		}
	}()

	var firstErr error
	results := g.parallelAnalyze(items, workers)
	err := orderedCollect(results, func(r workResult) error {
		if r.err != nil {
			g.logger.Warn("sample analysis failed",
				zap.String("sample", r.item.Sample),
				zap.Error(r.err))
			if firstErr == nil {
				firstErr = r.err
			}
			return nil
		}
		g.logger.Info("sample analyzed",
			zap.String("sample", r.item.Sample),
			zap.Int("results", len(r.item.Results)))
		return nil
	})
	if err != nil {
		return err
	}
	return firstErr
}
