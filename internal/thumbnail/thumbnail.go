// Package thumbnail renders width-bounded copies of stored images in the
// background. A rendition of width w is stored next to the original blob at
// localPath + "_" + w.
package thumbnail

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/nfnt/resize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"filestore/internal/model"
	"filestore/internal/storage"
)

// Job asks for the renditions of one image blob.
type Job struct {
	FileID    string
	LocalPath string
}

// Pool is a bounded set of workers fed through a buffered queue.
type Pool struct {
	store  storage.Storage
	widths []int
	jobs   chan Job
	log    *zap.Logger

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool creates a pool with room for queueSize pending jobs. Call Start to run
// workers and Close to drain them.
func NewPool(store storage.Storage, widths []int, queueSize int, log *zap.Logger) *Pool {
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		store:  store,
		widths: widths,
		jobs:   make(chan Job, queueSize),
		log:    log.Named("thumbnail"),
	}
}

// Start launches workers goroutines. They exit when the pool is closed or ctx
// is done.
func (p *Pool) Start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			if err := p.Process(ctx, job); err != nil {
				p.log.Warn("thumbnail generation failed",
					zap.String("file_id", job.FileID),
					zap.String("local_path", job.LocalPath),
					zap.Error(err),
				)
			}
		}
	}
}

// Enqueue queues a job without blocking. It returns false when the queue is
// full or the pool is closed; the job is dropped in that case.
func (p *Pool) Enqueue(fileID, localPath string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- Job{FileID: fileID, LocalPath: localPath}:
		return true
	default:
		p.log.Warn("thumbnail queue full, dropping job", zap.String("file_id", fileID))
		return false
	}
}

// Close stops intake and waits for workers to finish queued jobs.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Process renders every configured width of one image.
func (p *Pool) Process(ctx context.Context, job Job) error {
	src, err := p.store.Get(ctx, job.LocalPath)
	if err != nil {
		return fmt.Errorf("read original: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range p.widths {
		w := w
		g.Go(func() error {
			out, err := encode(resize.Resize(uint(w), 0, img, resize.Lanczos3), format)
			if err != nil {
				return fmt.Errorf("width %d: %w", w, err)
			}
			return p.store.Put(ctx, model.RenditionPath(job.LocalPath, model.RenditionWidth(w)), out)
		})
	}
	return g.Wait()
}

func encode(img image.Image, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "png":
		err = png.Encode(&buf, img)
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
