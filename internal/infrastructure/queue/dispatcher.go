package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/shopdesk/store-admin/internal/api/metrics"
	"github.com/shopdesk/store-admin/internal/core/domain"
	"github.com/shopdesk/store-admin/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	drainTimeout   = 5 * time.Second
)

// AuditDispatcher routes audit records to a fixed set of workers using
// consistent hashing on the resource, so records of one resource are stored
// in the order they were emitted.
type AuditDispatcher struct {
	workers []chan domain.AuditRecord
	repo    ports.AuditRepository
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewAuditDispatcher creates an AuditDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditRecord, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and stop
// once ctx is cancelled; Wait blocks until they have.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *AuditDispatcher) Wait() {
	d.wg.Wait()
}

// Record hands rec to the worker responsible for its resource. It never
// blocks: when that worker's buffer is full the record is dropped and counted.
func (d *AuditDispatcher) Record(rec domain.AuditRecord) {
	idx := d.shardIndex(rec.Resource)
	select {
	case d.workers[idx] <- rec:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	default:
		metrics.AuditDroppedTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("resource", rec.Resource).
			Str("action", rec.Action).
			Int("worker_id", idx).
			Msg("audit queue full, record dropped")
	}
}

// shardIndex maps a resource name deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(resource string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resource))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditRecord) {
	defer d.wg.Done()
	depth := metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			d.drain(id, ch, depth)
			return
		case rec := <-ch:
			depth.Dec()
			d.store(ctx, id, rec)
		}
	}
}

// drain stores what is still buffered after shutdown started. The worker's
// context is already cancelled, so the inserts get a bounded one of their own.
func (d *AuditDispatcher) drain(id int, ch <-chan domain.AuditRecord, depth prometheus.Gauge) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case rec := <-ch:
			depth.Dec()
			d.store(ctx, id, rec)
		default:
			return
		}
	}
}

func (d *AuditDispatcher) store(ctx context.Context, id int, rec domain.AuditRecord) {
	if err := d.repo.Insert(ctx, rec); err != nil {
		metrics.AuditDroppedTotal.WithLabelValues("insert_failed").Inc()
		d.log.Error().Err(err).
			Str("resource", rec.Resource).
			Str("action", rec.Action).
			Int("worker_id", id).
			Msg("audit record not stored")
	}
}
