// Package diamonds implements the file contract with the DIAMONDS
// nested-sampling engine that performs background fits.
//
// Before a fit, the star directory must hold the prior hyper-parameters, the
// sampler and clustering configuration, and the Nyquist frequency of the
// data. [Bundle] renders and writes those four files. After a fit, the
// engine leaves parameter summaries, marginal distributions and sampling
// traces in a numbered sub-directory. [Run] reads them back.
//
// Directory layout, relative to the local path:
//
//	data/<catalog><star>.txt                  PSD
//	results/<catalog><star>/                  star directory
//	results/<catalog><star>/NN/               fit results for run NN
//
// All files are whitespace separated ASCII tables with '#' comments, in the
// format numpy.savetxt produces.
package diamonds
