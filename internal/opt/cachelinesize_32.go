//go:build countx_cachelinesize_32

package opt

// CacheLineSize_ is force-set to 32 bytes via the countx_cachelinesize_32
// build tag, for targets where the probed value is wrong.
const CacheLineSize_ = 32
