package core

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

type batchPara struct {
	index   int
	input   string
	results []*Decomposition
	wg      *sync.WaitGroup
	bar     *progressbar.ProgressBar
}

func newBatchBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan] Decomposing [reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=",
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
			SaucerHead:    "[blue]>",
		}))
}

// DecomposeBatch decomposes every input on a pool of thread workers. The
// results keep the order of inputs. When progress is not nil a progress bar
// is drawn on it. A cancelled ctx stops the submission of new inputs and
// returns ctx.Err() once the running ones are done.
func DecomposeBatch(ctx context.Context, inputs []string, thread int, progress io.Writer) ([]*Decomposition, error) {
	if thread < 1 {
		thread = 1
	}
	results := make([]*Decomposition, len(inputs))

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = newBatchBar(progress, len(inputs))
	}

	var wg sync.WaitGroup
	pool, err := ants.NewPoolWithFunc(thread, func(para interface{}) {
		p := para.(batchPara)
		defer p.wg.Done()
		p.results[p.index] = Decompose(p.input)
		if p.bar != nil {
			_ = p.bar.Add(1)
		}
	}, ants.WithExpiryDuration(2*time.Second))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	t1 := time.Now()
	var cancelled error
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			cancelled = err
			break
		}
		wg.Add(1)
		if err := pool.Invoke(batchPara{
			index:   i,
			input:   input,
			results: results,
			wg:      &wg,
			bar:     bar,
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit input %d: %w", i, err)
		}
	}
	wg.Wait()

	if bar != nil {
		_ = bar.Finish()
	}
	if cancelled != nil {
		Logger.Warn("batch cancelled", zap.Error(cancelled))
		return nil, cancelled
	}

	Logger.Info("batch finished",
		zap.Int("inputs", len(inputs)),
		zap.Int("thread", thread),
		zap.Duration("elapsed", time.Since(t1)))
	return results, nil
}
