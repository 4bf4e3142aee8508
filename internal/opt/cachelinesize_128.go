//go:build countx_cachelinesize_128

package opt

// CacheLineSize_ is force-set to 128 bytes via the countx_cachelinesize_128
// build tag, for targets where the probed value is wrong.
const CacheLineSize_ = 128
