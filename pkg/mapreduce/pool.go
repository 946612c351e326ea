package mapreduce

import "sync"

type Task func()

type Pool struct {
	numWorkers int
	tasks      chan Task
	once       sync.Once
	wg         sync.WaitGroup
}

func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan Task, numWorkers),
	}
}

func (p *Pool) Start() {
	p.once.Do(func() {
		for range p.numWorkers {
			p.wg.Go(func() {
				for task := range p.tasks {
					if task != nil {
						task()
					}
				}
			})
		}
	})
}

func (p *Pool) Submit(task Task) {
	p.tasks <- task
}

// Close stops accepting tasks and waits for the submitted ones to finish.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}
