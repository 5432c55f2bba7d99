// Package bundler runs the collect-process-emit pipeline that turns
// declared icon sources into one CSS file.
package bundler
