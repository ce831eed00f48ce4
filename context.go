// Copyright 2026 The NRBF Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package nrbf

import (
	"os"

	"github.com/go-nrbf/nrbf/log"
)

// defaultMaxDepth bounds record recursion (nested class members, array
// elements, BinaryLibrary look-ahead) to turn a maliciously or accidentally
// deep input into a Corrupt error instead of a stack overflow. The teacher
// doesn't need this — PE data directories don't nest arbitrarily — but
// NRBF member values recurse through the dispatcher (spec.md §4.6), so it
// is this decoder's own ambient hardening.
const defaultMaxDepth = 10000

// Options configures a decode session, mirroring pe.Options: a small
// struct of knobs plus an optional custom Logger, threaded through
// construction rather than read from globals.
type Options struct {
	// MaxDepth overrides defaultMaxDepth. Zero means "use the default".
	MaxDepth int

	// Logger receives diagnostic messages, in particular the partial-tree
	// dump on decode failure (spec.md §4.5/§7). Defaults to a filtered
	// stderr logger at Warn level if nil.
	Logger log.Logger
}

// Context is the single session scoped to one Deserialize call. It owns
// the byte source and the class metadata cache and is destroyed at
// return, per spec.md §3 "Decoder session state" and §5's concurrency
// model: no state is shared across sessions, so independent sessions over
// disjoint inputs require no coordination.
type Context struct {
	reader   *ByteSource
	metadata *MetadataCache
	opts     Options
	logger   *log.Helper
	depth    int
}

// newContext builds a Context over data with opts applied, the way
// file.go's New/NewBytes apply defaults onto an Options value.
func newContext(data []byte, opts *Options) *Context {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = defaultMaxDepth
	}

	var logger log.Logger
	if o.Logger != nil {
		logger = o.Logger
	} else {
		logger = log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(log.LevelWarn))
	}

	return &Context{
		reader:   NewByteSource(data),
		metadata: NewMetadataCache(),
		opts:     o,
		logger:   log.NewHelper(logger),
	}
}

// enterRecord increments the recursion guard; callers must defer leaveRecord.
func (c *Context) enterRecord() error {
	c.depth++
	if c.depth > c.opts.MaxDepth {
		return Corrupt("record nesting exceeds maximum depth %d", c.opts.MaxDepth)
	}
	return nil
}

func (c *Context) leaveRecord() {
	c.depth--
}

// Deserialize decodes data as a complete NRBF stream and returns the Root
// aggregate. Records are decoded and appended to Root in strict wire
// order, per spec.md §4.5. On failure, the partial tree is dumped to the
// session logger before the error is returned (spec.md §4.5 step 3, §7).
func Deserialize(data []byte, opts *Options) (*Aggregate, error) {
	ctx := newContext(data, opts)
	root := NewAggregate("Root")

	for !ctx.reader.EOF() {
		child, err := decodeRecord(ctx)
		if err != nil {
			ctx.logger.Debugf("partial tree before failure:\n%s", root.AsXML(0))
			return nil, err
		}
		root.Add(child)
	}

	return root, nil
}
