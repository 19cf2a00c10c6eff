package augmenters

import (
	"runtime"
	"sync/atomic"

	"github.com/gomlx/exceptions"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var parallelism = int64(runtime.NumCPU())

// SetParallelism limits the number of goroutines used by the kernel-heavy
// augmenters (blur, affine, noise, dropout) to process the images of one
// batch. It defaults to the number of CPUs; n <= 1 disables parallelism.
//
// Parallelism never changes outputs: all per-image random values are sampled
// in a single pass before any worker starts, so the application phase has no
// dependency on shared mutable state.
func SetParallelism(n int) {
	if n < 1 {
		n = 1
	}
	atomic.StoreInt64(&parallelism, int64(n))
	klog.V(1).Infof("augmenters: per-batch parallelism set to %d", n)
}

// applyPerImage runs fn for every image index in [0, count), in parallel when
// allowed. fn must only depend on already-sampled values and on the image it
// is given; it must not draw from the augmenter's stream. Errors thrown
// inside workers are re-thrown on the caller's goroutine.
func applyPerImage(count int, fn func(ii int)) {
	limit := int(atomic.LoadInt64(&parallelism))
	if count <= 1 || limit <= 1 {
		for ii := 0; ii < count; ii++ {
			fn(ii)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for ii := 0; ii < count; ii++ {
		ii := ii
		g.Go(func() error {
			return exceptions.TryCatch[error](func() { fn(ii) })
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}
}
