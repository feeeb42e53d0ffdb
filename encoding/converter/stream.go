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

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// Logger receives progress messages.  log.Info (or log.Debug) from
// github.com/grailbio/base/log satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Opts controls BED-to-TSV conversion.
type Opts struct {
	// Logger receives the start, progress and completion messages.  Nil
	// disables logging.
	Logger Logger
	// ProgressInterval is the number of data rows between progress messages.
	// Values <= 0 disable progress messages.
	ProgressInterval int64
	// BGZF causes BEDToTSV to write BGZF instead of plain gzip.  BGZF is a
	// series of gzip members, so the output stays readable by any gzip reader,
	// and it can be indexed with tabix.
	BGZF bool
	// Parallelism is the number of BGZF compression workers.  It is ignored
	// for plain gzip.
	Parallelism int
}

// DefaultOpts is the default value of Opts.
var DefaultOpts = Opts{
	ProgressInterval: 10000,
	Parallelism:      1,
}

func (o *Opts) logger() Logger {
	if o.Logger == nil {
		return nopLogger{}
	}
	return o.Logger
}

// Stats summarizes a conversion.
type Stats struct {
	// Rows is the number of data rows written, not counting the header.
	Rows int64
	// Keys is the metadata key set taken from the first data row.
	Keys []string
}

// Convert reads BED-like rows from r and writes TSV rows to w.  Both streams
// are uncompressed; see BEDToTSV for the file-level variant.
//
// The first line of r is discarded whatever it holds, even if it is blank.
// The header written to w is CHROM, START, END, STRAND, followed by the
// metadata keys of the first data row.  Every later row is assumed to carry the
// same keys in the same order; this is not checked.  Every other line is a data
// row, so a blank line fails with a *RowShapeError.
//
// Conversion stops at the first bad row.  Rows before it have already been
// written to w, and w is flushed in either case.  If the first data row has
// parseable metadata, the header is written before the rest of that row is
// checked.
func Convert(r io.Reader, w io.Writer, opts Opts) (stats Stats, err error) {
	log := opts.logger()
	in := bufio.NewReaderSize(r, 64<<10)
	out := tsv.NewWriter(w)
	defer func() {
		if e := out.Flush(); e != nil && err == nil {
			err = errors.Wrap(e, "flush")
		}
	}()

	// The first line is a track or column-name line; its contents are not
	// examined.
	if _, err = readLine(in); err != nil {
		if err == io.EOF {
			err = nil
		}
		return
	}
	headerWritten := false
	for {
		line, e := readLine(in)
		if e == io.EOF {
			break
		}
		row := stats.Rows + 1
		if e != nil {
			return stats, errors.Wrapf(e, "row %d", row)
		}
		fields := splitFields(line)
		md, e := rowMetadata(row, fields)
		if e != nil {
			return stats, e
		}
		if !headerWritten {
			stats.Keys = append([]string(nil), md.Keys()...)
			for _, col := range Header(md) {
				out.WriteString(col)
			}
			if e := out.EndLine(); e != nil {
				return stats, errors.Wrap(e, "write header")
			}
			headerWritten = true
		}
		rec, e := newRecord(row, fields, md)
		if e != nil {
			return stats, e
		}
		if e := rec.write(out); e != nil {
			return stats, errors.Wrapf(e, "write row %d", row)
		}
		stats.Rows++
		if opts.ProgressInterval > 0 && stats.Rows%opts.ProgressInterval == 0 {
			log.Printf("Written %d lines", stats.Rows)
		}
	}
	return
}

// readLine returns the next physical line of r without its "\n" or "\r\n"
// terminator.  A final line without a terminator is still returned; io.EOF is
// reported only once nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// splitFields splits a line on tabs.  A blank line has no fields.
func splitFields(line string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, "\t")
}
