// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package converter

// Utility for converting a gzipped BED with key=value annotations to a
// gzipped TSV.

import (
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/hts/bgzf"
	"github.com/klauspost/compress/gzip"
)

// BEDToTSV converts the gzipped BED file at inPath to a gzipped TSV at
// outPath.  See Convert for the row format.
//
// The output is created before the input is opened, so a missing input still
// leaves an (empty) output behind.  Both files are closed on every return
// path; an error from a close is reported only if nothing failed earlier.
func BEDToTSV(ctx context.Context, inPath, outPath string, opts Opts) (err error) {
	log := opts.logger()
	log.Printf("Commencing conversion")

	out, err := file.Create(ctx, outPath)
	if err != nil {
		return errors.E(err, "create", outPath)
	}
	defer file.CloseAndReport(ctx, out, &err)

	var zw io.WriteCloser
	if opts.BGZF {
		parallelism := opts.Parallelism
		if parallelism <= 0 {
			parallelism = 1
		}
		zw = bgzf.NewWriter(out.Writer(ctx), parallelism)
	} else {
		zw = gzip.NewWriter(out.Writer(ctx))
	}
	// The compressor must be closed before out, otherwise the gzip trailer is
	// lost.  Deferred calls run in reverse order, so this runs first.
	defer func() {
		if e := zw.Close(); e != nil && err == nil {
			err = errors.E(e, "close", outPath)
		}
	}()

	in, err := file.Open(ctx, inPath)
	if err != nil {
		return errors.E(err, "open", inPath)
	}
	defer file.CloseAndReport(ctx, in, &err)
	zr, _ := compress.NewReader(in.Reader(ctx))
	defer func() {
		if e := zr.Close(); e != nil && err == nil {
			err = errors.E(e, "close", inPath)
		}
	}()

	stats, err := Convert(zr, zw, opts)
	if err != nil {
		return err
	}
	log.Printf("Finishing writing: %d rows, %d metadata columns", stats.Rows, len(stats.Keys))
	return nil
}
