package assets

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/assets/content"
	"github.com/gogpu/assets/internal/imaging"
	"github.com/gogpu/assets/internal/parallel"
)

// Config holds construction parameters for a Manager. Device, Queue and
// Loader are required; everything else has working zero-value defaults.
type Config struct {
	// Device is the HAL device used for resource creation. The Manager
	// shares it with its worker goroutines but does not own it.
	Device hal.Device

	// Queue is the HAL queue used for uploads. Submission is serialized
	// by the HAL; the Manager adds no locking of its own.
	Queue hal.Queue

	// Loader resolves paths into decoded payloads. It is owned by the
	// background worker and called from a single goroutine.
	Loader content.Loader

	// Workers sizes the decode/upload pool. 0 means GOMAXPROCS.
	Workers int

	// QueueDepth buffers the request and result channels. 0 means 64.
	QueueDepth int
}

// defaultQueueDepth buffers enough in-flight traffic for a level load burst
// without unbounded growth.
const defaultQueueDepth = 64

// Manager orchestrates asynchronous asset streaming: it owns the identity
// source, the path index, the resource cache and both ends of the worker
// channels.
//
// The mutating surface (Request, Update, Get, Delete, Register) is meant to
// be driven from the thread that owns the render loop; internal state is
// still mutex-guarded, so stray calls from other goroutines (and WaitFor,
// which is explicitly cross-goroutine) stay safe.
type Manager struct {
	device hal.Device
	queue  hal.Queue
	loader content.Loader

	mu      sync.RWMutex
	guids   guidSource
	paths   *pathIndex
	cache   *resourceCache
	pending map[Guid]struct{}
	waiters map[Guid][]chan error

	requests chan loadRequest
	results  chan loadResult
	pool     *parallel.Pool

	// fallback holds the decoded builtin checkerboard used to substitute
	// textures and array layers that fail to decode.
	fallback *imaging.Image

	closed atomic.Bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewManager creates a Manager, synchronously loads the builtin assets, and
// starts the loader worker. The builtin fallback texture failing to load is
// unrecoverable and aborts construction.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Device == nil {
		return nil, ErrNilDevice
	}
	if cfg.Queue == nil {
		return nil, ErrNilQueue
	}
	if cfg.Loader == nil {
		return nil, ErrNilLoader
	}
	depth := cfg.QueueDepth
	if depth <= 0 {
		depth = defaultQueueDepth
	}

	m := &Manager{
		device:   cfg.Device,
		queue:    cfg.Queue,
		loader:   cfg.Loader,
		cache:    newResourceCache(),
		pending:  make(map[Guid]struct{}),
		waiters:  make(map[Guid][]chan error),
		requests: make(chan loadRequest, depth),
		results:  make(chan loadResult, depth),
		done:     make(chan struct{}),
	}
	m.paths = newPathIndex(&m.guids)

	if err := m.loadBuiltins(); err != nil {
		return nil, err
	}

	m.pool = parallel.New(cfg.Workers)
	m.wg.Add(1)
	go m.runWorker()

	Logger().Info("assets: manager started",
		"workers", m.pool.Workers(), "queueDepth", depth, "builtins", m.cache.len())
	return m, nil
}

// Request resolves path to a typed handle and, if the resource is neither
// cached nor already in flight, sends a load request to the worker. The
// handle is returned immediately regardless of completion state.
//
// After Close the request is dropped with a warning; the asset simply never
// arrives, and a fresh Request against a live Manager is needed to retry.
func Request[T Resource](m *Manager, path string, priority int) Ptr[T] {
	m.mu.Lock()
	rerequest := m.paths.known(path)
	guid := m.paths.idFor(path)
	if m.cache.contains(guid) {
		m.mu.Unlock()
		return ptrOf[T](guid)
	}
	if _, inflight := m.pending[guid]; inflight {
		// Tolerated duplicate: the first request's completion serves both.
		m.mu.Unlock()
		return ptrOf[T](guid)
	}
	m.pending[guid] = struct{}{}
	m.mu.Unlock()

	// Checked before the send: once done is closed both select cases may be
	// ready and the send could win, parking the request in a channel no
	// worker reads and leaking the pending entry.
	if m.closed.Load() {
		m.dropRequest(guid, path)
		return ptrOf[T](guid)
	}

	select {
	case m.requests <- loadRequest{path: path, guid: guid, priority: priority}:
		Logger().Debug("assets: request enqueued",
			"path", path, "guid", guid, "priority", priority, "rerequest", rerequest)
	case <-m.done:
		m.dropRequest(guid, path)
	}
	return ptrOf[T](guid)
}

// dropRequest clears the pending entry for a request that will never be
// served and logs the drop.
func (m *Manager) dropRequest(guid Guid, path string) {
	m.mu.Lock()
	delete(m.pending, guid)
	m.mu.Unlock()
	Logger().Warn("assets: loader stopped, request dropped", "path", path, "guid", guid)
}

// Update drains all currently available worker results without blocking.
// Successes are inserted into the cache. On the first failure encountered it
// logs, notifies waiters, and returns a *LoadError carrying the failing
// Guid, leaving any further queued results for the next call. Callers that
// need a fully drained batch call Update repeatedly, typically once per
// frame.
func (m *Manager) Update() error {
	for {
		select {
		case res := <-m.results:
			if err := m.apply(res); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// apply commits one worker result to the cache and wakes its waiters.
func (m *Manager) apply(res loadResult) error {
	m.mu.Lock()
	delete(m.pending, res.guid)
	path, _ := m.paths.pathFor(res.guid)

	if res.err != nil {
		lerr := &LoadError{Guid: res.guid, Path: path, Err: res.err}
		m.notifyLocked(res.guid, lerr)
		m.mu.Unlock()
		Logger().Error("assets: load failed", "path", path, "guid", res.guid, "error", res.err)
		return lerr
	}

	m.cache.insert(res.guid, res.resource)
	m.notifyLocked(res.guid, nil)
	m.mu.Unlock()
	Logger().Debug("assets: asset ready", "path", path, "guid", res.guid, "kind", res.resource.Kind())
	return nil
}

// notifyLocked completes all WaitFor callers for guid. Caller holds m.mu.
// Waiter channels are buffered, so sends never block.
func (m *Manager) notifyLocked(guid Guid, err error) {
	for _, ch := range m.waiters[guid] {
		ch <- err
	}
	delete(m.waiters, guid)
}

// TryGet is a non-blocking cache lookup. It never drains worker results.
// It misses both when the Guid is absent and when the entry holds a
// different kind than T.
func TryGet[T Resource](m *Manager, p Ptr[T]) (T, bool) {
	m.mu.RLock()
	r, ok := m.cache.get(p.guid)
	m.mu.RUnlock()
	return narrow[T](r, ok)
}

// Get blocks until the handle's resource is cached or its load has failed,
// pumping Update in a poll loop with a brief yield between iterations. It is
// intended for load screens on the render thread, where the caller ticks a
// progress indicator elsewhere; library consumers that want a real blocking
// wait should prefer WaitFor.
//
// Get returns immediately with ok=false if the Guid is neither cached nor in
// flight, since such a resource can never arrive.
func Get[T Resource](m *Manager, p Ptr[T]) (T, bool) {
	for {
		if v, ok := TryGet(m, p); ok {
			return v, true
		}

		if err := m.Update(); err != nil {
			var lerr *LoadError
			if errors.As(err, &lerr) && lerr.Guid == p.guid {
				var zero T
				return zero, false
			}
		}

		m.mu.RLock()
		_, inflight := m.pending[p.guid]
		m.mu.RUnlock()
		if !inflight || m.closed.Load() {
			// Either it just arrived, or it will never arrive (unknown
			// Guid, failed load, wrong kind, closed Manager). One last
			// lookup decides.
			return TryGet(m, p)
		}

		runtime.Gosched()
		time.Sleep(200 * time.Microsecond)
	}
}

// WaitFor blocks until guid resolves (nil for success, the *LoadError for
// failure), the context is done, or the Manager closes. Unlike Get it does
// not pump Update itself: some goroutine, typically the render loop, must
// keep calling Update for results to be applied.
//
// A Guid that is neither cached nor in flight fails fast with ErrNotInFlight.
func (m *Manager) WaitFor(ctx context.Context, guid Guid) error {
	m.mu.Lock()
	if m.cache.contains(guid) {
		m.mu.Unlock()
		return nil
	}
	if _, inflight := m.pending[guid]; !inflight {
		m.mu.Unlock()
		return ErrNotInFlight
	}
	ch := make(chan error, 1)
	m.waiters[guid] = append(m.waiters[guid], ch)
	m.mu.Unlock()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrClosed
	}
}

// Register synchronously inserts an always-resident resource under path,
// bypassing the worker entirely. It is used for assets that must be
// available with zero latency, such as the builtin shaders, and returns the
// typed handle.
func Register[T Resource](m *Manager, path string, res T) Ptr[T] {
	m.mu.Lock()
	guid := m.registerLocked(path, res)
	m.mu.Unlock()
	return ptrOf[T](guid)
}

// registerLocked inserts a resource under path. Callers hold m.mu, except
// during construction where no other goroutine exists yet.
func (m *Manager) registerLocked(path string, res Resource) Guid {
	guid := m.paths.idFor(path)
	m.cache.insert(guid, res)
	return guid
}

// Delete removes the resource for guid from the cache. The path index entry
// is left intact: the Guid remains resolvable, and requesting its path again
// yields the same Guid but forces a fresh load.
func (m *Manager) Delete(guid Guid) {
	m.mu.Lock()
	m.cache.remove(guid)
	m.mu.Unlock()
}

// Contains reports whether guid currently has a cached resource.
func (m *Manager) Contains(guid Guid) bool {
	m.mu.RLock()
	ok := m.cache.contains(guid)
	m.mu.RUnlock()
	return ok
}

// PathFor returns the canonical path for guid, for diagnostics and progress
// reporting.
func (m *Manager) PathFor(guid Guid) (string, bool) {
	m.mu.RLock()
	p, ok := m.paths.pathFor(guid)
	m.mu.RUnlock()
	return p, ok
}

// Close stops the loader worker and the pool, then wakes any blocked
// WaitFor callers with ErrClosed. In-flight GPU work is finished, not
// aborted; results that were never drained are discarded. Close is safe to
// call multiple times. GPU resources are not destroyed: the Manager does not
// own the device.
func (m *Manager) Close() {
	if !m.closed.CompareAndSwap(false, true) {
		return
	}
	close(m.done)
	m.wg.Wait()
	m.pool.Close()

	// Requests that raced Close into the channel after the worker exited
	// would otherwise pin their pending entries forever.
	m.mu.Lock()
	for {
		select {
		case req := <-m.requests:
			delete(m.pending, req.guid)
		default:
			paths := m.paths.len()
			m.mu.Unlock()
			Logger().Info("assets: manager closed", "paths", paths)
			return
		}
	}
}
