package img2src

import (
	"context"
	"sync"

	"github.com/bodgit/img2src/source"
)

// Job describes the conversion of one image file.
type Job struct {
	File    string
	Options Options
	// Output names the file the fragment is destined for; it is not used
	// by the Converter
	Output string
	// Width and Height resize the image before conversion if either is
	// non-zero
	Width  uint
	Height uint
}

// JobFunc is called with each converted job.
type JobFunc func(Job, *Fragment) error

type result struct {
	index    int
	fragment *Fragment
}

func (c *Converter) queueJobs(ctx context.Context, n int) (<-chan int, <-chan error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for i := 0; i < n; i++ {
			select {
			case out <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc
}

func (c *Converter) jobWorker(ctx context.Context, cancel context.CancelFunc, jobs []Job, in <-chan int, out chan<- result, wg *sync.WaitGroup) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer wg.Done()
		defer close(errc)
		for i := range in {
			job := jobs[i]

			src, err := source.Load(job.File)
			if err != nil {
				errc <- err
				cancel()
				return
			}
			src = src.Resize(job.Width, job.Height)

			f, err := c.Convert(src, &job.Options)
			if err != nil {
				errc <- err
				cancel()
				return
			}
			c.logger.Printf("Converted \"%s\" to %s, %d bytes\n", job.File, job.Options.Mode, f.Elements)

			select {
			case out <- result{i, f}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// ConvertFiles converts each job using the given number of concurrent
// workers. The function fn is called from the calling goroutine for each
// converted job, strictly in the order the jobs are given. The first error
// from either a conversion or fn stops any remaining work and is returned.
func (c *Converter) ConvertFiles(ctx context.Context, jobs []Job, workers int, fn JobFunc) error {
	if workers < 1 {
		workers = 1
	}

	pctx := ctx
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	in, errc := c.queueJobs(ctx, len(jobs))
	errcList = append(errcList, errc)

	out := make(chan result)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		errcList = append(errcList, c.jobWorker(ctx, cancelFunc, jobs, in, out, &wg))
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	pending := make(map[int]*Fragment)
	next := 0
	for r := range out {
		pending[r.index] = r.fragment
		for f, ok := pending[next]; ok; f, ok = pending[next] {
			delete(pending, next)
			if err := fn(jobs[next], f); err != nil {
				cancelFunc()
				for range out {
				}
				return err
			}
			next++
		}
	}

	if err := waitForPipeline(errcList...); err != nil {
		return err
	}

	return pctx.Err()
}
