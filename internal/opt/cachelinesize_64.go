//go:build countx_cachelinesize_64

package opt

// CacheLineSize_ is force-set to 64 bytes via the countx_cachelinesize_64
// build tag, for targets where the probed value is wrong.
const CacheLineSize_ = 64
