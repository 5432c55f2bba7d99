// Package resolve turns bare icon references and config declarations
// into an ordered plan of collection sources.
package resolve
