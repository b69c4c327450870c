// Package catalog owns the vehicle model lineup: the built-in seed list, the
// JSON snapshot override on disk, and the pure segment/text filter over it.
package catalog
