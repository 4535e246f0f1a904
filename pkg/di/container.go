package di

import (
	"github.com/goliatone/go-matrix-cache/cache"
	"github.com/goliatone/go-matrix-cache/internal/linalg"
	"github.com/goliatone/go-matrix-cache/matrix"
	"github.com/goliatone/go-matrix-cache/matrixcache"
)

// Container provides dependency injection for the matrix cache components.
// It manages singleton instances of the inverter, fingerprinter, and
// notification sink, and provides factory methods for solvers and cached
// matrices.
type Container struct {
	inverter      cache.Inverter
	fingerprinter cache.Fingerprinter
	notifier      cache.Notifier
	config        cache.Config
}

// NewContainer creates a DI container with the provided configuration. It
// initializes the default elimination-based inverter, the default
// fingerprinter, and the no-op notification sink.
func NewContainer(config cache.Config) (*Container, error) {
	return NewContainerWithNotifier(config, cache.NopNotifier{})
}

// NewContainerWithDefaults creates a container using the default
// configuration. This is the convenience constructor for typical use where
// custom tuning is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cache.DefaultConfig())
}

// NewContainerWithNotifier creates a container whose solvers report cache
// events to the given sink. A nil notifier falls back to the no-op sink.
func NewContainerWithNotifier(config cache.Config, notifier cache.Notifier) (*Container, error) {
	inverter, err := linalg.New(config)
	if err != nil {
		return nil, err
	}
	if notifier == nil {
		notifier = cache.NopNotifier{}
	}
	return &Container{
		inverter:      inverter,
		fingerprinter: cache.NewDefaultFingerprinter(),
		notifier:      notifier,
		config:        config,
	}, nil
}

// Inverter returns the singleton inverter instance.
func (c *Container) Inverter() cache.Inverter {
	return c.inverter
}

// Fingerprinter returns the singleton fingerprinter instance.
func (c *Container) Fingerprinter() cache.Fingerprinter {
	return c.fingerprinter
}

// Notifier returns the notification sink wired into this container.
func (c *Container) Notifier() cache.Notifier {
	return c.notifier
}

// Config returns a copy of the configuration used by this container. This
// is useful for debugging and monitoring purposes.
func (c *Container) Config() cache.Config {
	return c.config
}

// NewSolver creates a memoizing solver wired with the container's inverter,
// fingerprinter, and notifier.
func (c *Container) NewSolver() *matrixcache.Solver {
	return matrixcache.New(c.inverter, c.fingerprinter, c.notifier)
}

// NewCachedMatrix creates a CachedMatrix holding a copy of initial, ready
// to be passed to a solver from the same container.
func (c *Container) NewCachedMatrix(initial *matrix.Dense) (*matrixcache.CachedMatrix, error) {
	return matrixcache.NewCachedMatrix(initial)
}
