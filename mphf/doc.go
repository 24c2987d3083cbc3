/*
Package mphf builds and resolves minimal perfect hash functions over
3-byte code point keys.

Construction follows the hash-and-displace scheme described by Steve Hanov
(http://stevehanov.ca/blog/?id=119): keys are grouped into buckets by a
primary hash, larger buckets are spread over free slots by searching for a
second-level seed, and singleton buckets fill the remaining slots directly.
The resulting table G maps n keys onto exactly n slots.
*/
package mphf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'faff'
func tracer() tracing.Trace {
	return tracing.Select("faff")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
