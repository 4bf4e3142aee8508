//go:build countx_cachelinesize_256

package opt

// CacheLineSize_ is force-set to 256 bytes via the countx_cachelinesize_256
// build tag, for targets where the probed value is wrong.
const CacheLineSize_ = 256
