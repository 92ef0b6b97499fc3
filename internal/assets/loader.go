package assets

import (
	"context"
	"image"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meadow/internal/logger"
)

// Decoder turns file contents into an image.
type Decoder func(data []byte, name string) (image.Image, error)

// Result is one finished load. Err is set when the file could not be read
// or decoded; the caller keeps its fallback in that case.
type Result struct {
	Name  string
	Image image.Image
	Err   error
}

// Loader reads and decodes images off the render thread. Results are
// collected with Poll from the frame loop, which owns GL uploads.
type Loader struct {
	manager *Manager
	decode  Decoder
	limit   int
	results chan Result
	done    chan struct{}
	err     error
	log     *zap.Logger
}

// NewLoader creates a loader running at most limit decodes at once.
func NewLoader(m *Manager, decode Decoder, limit int) *Loader {
	return &Loader{
		manager: m,
		decode:  decode,
		limit:   max(limit, 1),
		log:     logger.Named("assets"),
	}
}

// Start loads names in the background. It must be called once.
func (l *Loader) Start(ctx context.Context, names ...string) {
	l.results = make(chan Result, len(names))
	l.done = make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	go func() {
		defer close(l.done)
		defer close(l.results)

		for _, name := range names {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				l.results <- l.load(name)
				return nil
			})
		}
		l.err = g.Wait()
	}()
}

func (l *Loader) load(name string) Result {
	data, err := l.manager.Load(name)
	if err != nil {
		l.log.Warn("asset load failed", zap.String("name", name), zap.Error(err))
		return Result{Name: name, Err: err}
	}
	img, err := l.decode(data, name)
	if err != nil {
		l.log.Warn("asset decode failed", zap.String("name", name), zap.Error(err))
		return Result{Name: name, Err: err}
	}
	l.log.Debug("asset decoded",
		zap.String("name", name),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return Result{Name: name, Image: img}
}

// Poll returns the results finished since the last call without blocking.
func (l *Loader) Poll() []Result {
	var out []Result
	for {
		select {
		case r, ok := <-l.results:
			if !ok {
				return out
			}
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until every load finished or the context was cancelled and
// returns the cancellation error, if any.
func (l *Loader) Wait() error {
	<-l.done
	return l.err
}
