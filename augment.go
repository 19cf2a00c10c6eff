// Package augment implements randomized, composable transformations of
// batches of images, used to generate augmented training data for machine
// learning pipelines.
//
// The library is organized around a small set of packages:
//
//   - augmenters: the transformation engine -- the Augmenter interface, the
//     composite augmenters (Sequence, Sometimes) and the parameter-driven leaf
//     augmenters (flips, Multiply, AdditiveGaussianNoise, Dropout,
//     GaussianBlur, Affine, ...).
//   - params: stochastic parameters, reproducible sampling functions from
//     (shape, random stream) to arrays of values.
//   - random: forkable, snapshot-able pseudo-random streams. Each augmenter
//     owns one; no stream is ever shared between siblings.
//   - batches: the batch data model -- N stacked uint8 images, shaped
//     (count, height, width, channels).
//   - kernels: thin wrappers around the external numeric kernels (separable
//     Gaussian blur, inverse-mapped affine resampling).
//
// A typical pipeline:
//
//	seq := augmenters.NewSequence(
//		augmenters.NewHorizontalFlip(0.5),
//		augmenters.NewSometimes(0.3, augmenters.NewGaussianBlur([2]float64{0, 2}), nil),
//		augmenters.NewAffine([2]float64{0.9, 1.1}, [2]float64{-0.1, 0.1}, [2]float64{-15, 15}, 0.0),
//	)
//	augmented := seq.Augment(batch)
//
// To apply the same random decisions to an image and its paired annotation
// (e.g. a segmentation mask), create a deterministic clone and reuse it:
//
//	det := seq.Deterministic()
//	imagesOut := det.Augment(images) // Both calls draw from the same
//	masksOut := det.Augment(masks)   // snapshotted stream state.
//
// # Errors
//
// Following the convention of the gomlx family of libraries, errors are
// thrown as panics with error values (see ConfigError, InputError and
// AssertionError in this package). Use exceptions.TryCatch from
// github.com/gomlx/exceptions to convert them back to ordinary errors:
//
//	err := exceptions.TryCatch[error](func() { out = seq.Augment(batch) })
//
// # Glossary
//
//   - Batch: a 4-dimensional array of stacked images, shape
//     (count, height, width, channels), uint8 elements in [0, 255].
//   - Stochastic parameter: a reproducible sampling function from
//     (shape, random stream) to an array of values.
//   - Deterministic clone: an independently seeded copy of an augmenter whose
//     stream is snapshotted before and restored after every call, so repeated
//     calls replay identical random decisions.
package augment
