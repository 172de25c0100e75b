// Package workerpool implements the fixed-size goroutine pool that executes
// tile-rendering jobs: a shared job channel feeding N long-lived workers,
// each holding its own sampler, draining into a single result channel.
package workerpool

import (
	"sync"

	"github.com/mrigankad/pathtracer/accum"
	"github.com/mrigankad/pathtracer/sampler"
)

// Job is a move-only unit of work: given the worker's private sampler, it
// produces a completed tile. Jobs are delivered to workers in enqueue
// order but may finish in any order.
type Job func(smp *sampler.Sampler) accum.TileAccumulator

// Pool owns n worker goroutines sharing one job queue and one result
// channel. Each worker owns exactly one sampler for its lifetime, seeded
// deterministically from its index so repeated renders with the same seed
// base are reproducible per worker.
type Pool struct {
	jobs    chan Job
	results chan accum.TileAccumulator
	wg      sync.WaitGroup
}

// New spawns n workers. seedBase offsets each worker's sampler seed so two
// pools built from different seedBase values never correlate.
func New(n int, seedBase int64) *Pool {
	p := &Pool{
		jobs:    make(chan Job),
		results: make(chan accum.TileAccumulator),
	}

	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker(sampler.New(seedBase + int64(i)))
	}

	return p
}

func (p *Pool) worker(smp *sampler.Sampler) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.results <- job(smp)
	}
}

// Submit enqueues a job. It blocks until a worker picks it up.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Results returns the channel the orchestrator drains completed tiles from.
func (p *Pool) Results() <-chan accum.TileAccumulator {
	return p.results
}

// Close drops the job sender, which workers observe as channel closure and
// exit on; it then joins every worker goroutine and closes the result
// channel. Close must only be called once, and only after all in-flight
// jobs have been drained from Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}
