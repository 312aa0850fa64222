// Package som implements a Self-Organizing Map: a width x height grid of
// prototype vectors trained by competitive learning into a topology-preserving
// 2-D projection of the input space.
//
// A Map moves through three states:
//
//	Uninitialized --Train--> Training --> Trained
//
// New allocates the grid with random prototypes. Train pulls prototypes
// toward randomly drawn samples with a Gaussian neighborhood whose radius
// decays exponentially while the learning rate decays linearly. Calling
// Train again resumes from the current prototypes with fresh schedules.
//
// After training, FindBMU locates the best matching unit for an input and
// UMatrix exposes the normalized boundary map used for terrain rendering.
//
// A Map is not safe for concurrent use.
package som
