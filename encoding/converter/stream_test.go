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
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

// recordingLogger remembers every message it is given.
type recordingLogger struct {
	msgs []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.msgs = append(l.msgs, fmt.Sprintf(format, args...))
}

const bedHeader = "#chrom\tstart\tend\tname\tscore\tstrand\n"

func convertString(t *testing.T, in string, opts Opts) (string, Stats, error) {
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(in), &out, opts)
	return out.String(), stats, err
}

func TestConvert(t *testing.T) {
	in := bedHeader +
		"chr1\t100\t200\tgene_id=A;type=exon\t.\t+\n" +
		"chr2\t0\t5\tgene_id=B;type=intron\t0\t-\n"
	out, stats, err := convertString(t, in, DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out,
		"CHROM\tSTART\tEND\tSTRAND\tgene_id\ttype\n"+
			"chr1\t101\t200\t+\tA\texon\n"+
			"chr2\t1\t5\t-\tB\tintron\n")
	expect.EQ(t, stats, Stats{Rows: 2, Keys: []string{"gene_id", "type"}})
}

func TestConvertFirstLineIsNotValidated(t *testing.T) {
	in := "whatever \"is\" here\n" +
		"chr1\t100\t200\tgene_id=A;type=exon\t.\t+\n"
	out, _, err := convertString(t, in, DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out,
		"CHROM\tSTART\tEND\tSTRAND\tgene_id\ttype\n"+
			"chr1\t101\t200\t+\tA\texon\n")
}

func TestConvertEmpty(t *testing.T) {
	for _, in := range []string{"", bedHeader} {
		out, stats, err := convertString(t, in, DefaultOpts)
		assert.NoError(t, err)
		expect.EQ(t, out, "")
		expect.EQ(t, stats.Rows, int64(0))
	}
}

func generateBED(n int) string {
	var b strings.Builder
	b.WriteString(bedHeader)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "chr%d\t%d\t%d\tgene_id=G%d;gene_name=N%d;score=%d\t0\t+\n",
			i%22+1, i*10, i*10+5, i, i, i%7)
	}
	return b.String()
}

func TestConvertShape(t *testing.T) {
	const n = 1234
	out, stats, err := convertString(t, generateBED(n), DefaultOpts)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.EQ(t, len(lines), n+1)
	assert.EQ(t, stats.Rows, int64(n))
	expect.EQ(t, lines[0], "CHROM\tSTART\tEND\tSTRAND\tgene_id\tgene_name\tscore")
	for i, line := range lines {
		cols := strings.Split(line, "\t")
		expect.EQ(t, len(cols), 4+3, i)
		if i > 0 {
			expect.EQ(t, cols[1], fmt.Sprint((i-1)*10+1), i)
			expect.EQ(t, cols[2], fmt.Sprint((i-1)*10+5), i)
		}
	}
}

func TestConvertHeaderFromFirstRowOnly(t *testing.T) {
	// Later rows with other keys don't change the header.
	in := bedHeader +
		"chr1\t1\t2\ta=1;b=2\t.\t+\n" +
		"chr1\t3\t4\tc=3;d=4\t.\t+\n"
	out, stats, err := convertString(t, in, DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out,
		"CHROM\tSTART\tEND\tSTRAND\ta\tb\n"+
			"chr1\t2\t2\t+\t1\t2\n"+
			"chr1\t4\t4\t+\t3\t4\n")
	expect.EQ(t, stats.Keys, []string{"a", "b"})
}

func TestConvertMalformedMetadataAborts(t *testing.T) {
	in := bedHeader +
		"chr1\t1\t2\ta=1\t.\t+\n" +
		"chr1\t3\t4\tfoo\t.\t+\n" +
		"chr1\t5\t6\ta=3\t.\t+\n"
	out, stats, err := convertString(t, in, DefaultOpts)
	e, ok := err.(*MalformedMetadataError)
	require.True(t, ok, "%T %v", err, err)
	expect.EQ(t, e.Row, int64(2))
	expect.EQ(t, e.Entry, "foo")
	// Rows before the bad one are flushed; nothing after it is written.
	expect.EQ(t, out, "CHROM\tSTART\tEND\tSTRAND\ta\nchr1\t2\t2\t+\t1\n")
	expect.EQ(t, stats.Rows, int64(1))
}

func TestConvertBadStartAborts(t *testing.T) {
	in := bedHeader + "chr1\tabc\t2\ta=1\t.\t+\n"
	out, _, err := convertString(t, in, DefaultOpts)
	e, ok := err.(*NumericParseError)
	require.True(t, ok, "%T %v", err, err)
	expect.EQ(t, e.Row, int64(1))
	expect.EQ(t, e.Value, "abc")
	// The header comes from the metadata, which parsed fine.
	expect.EQ(t, out, "CHROM\tSTART\tEND\tSTRAND\ta\n")
}

func TestConvertShortRowAborts(t *testing.T) {
	for _, tt := range []struct {
		in        string
		numFields int
		out       string
	}{
		// The metadata column is present, so the header is written first.
		{"chr1\t1\t2\ta=1\n", 4, "CHROM\tSTART\tEND\tSTRAND\ta\n"},
		{"chr1\t1\t2\ta=1\t.\n", 5, "CHROM\tSTART\tEND\tSTRAND\ta\n"},
		{"chr1\t1\t2\n", 3, ""},
	} {
		out, _, err := convertString(t, bedHeader+tt.in, DefaultOpts)
		e, ok := err.(*RowShapeError)
		require.True(t, ok, "%T %v", err, err)
		expect.EQ(t, e.Row, int64(1), tt.in)
		expect.EQ(t, e.NumFields, tt.numFields, tt.in)
		expect.EQ(t, out, tt.out, tt.in)
	}
}

func TestConvertBlankFirstLine(t *testing.T) {
	// Only the blank first line is dropped; the next line is data.
	in := "\nchr1\t100\t200\tk=v\t.\t+\n"
	out, stats, err := convertString(t, in, DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out, "CHROM\tSTART\tEND\tSTRAND\tk\nchr1\t101\t200\t+\tv\n")
	expect.EQ(t, stats.Rows, int64(1))
}

func TestConvertBlankLineAborts(t *testing.T) {
	in := bedHeader +
		"chr1\t1\t2\tk=a\t.\t+\n" +
		"\n" +
		"chr1\t3\t4\tk=b\t.\t+\n"
	out, stats, err := convertString(t, in, DefaultOpts)
	e, ok := err.(*RowShapeError)
	require.True(t, ok, "%T %v", err, err)
	expect.EQ(t, e.Row, int64(2))
	expect.EQ(t, e.NumFields, 0)
	expect.EQ(t, out, "CHROM\tSTART\tEND\tSTRAND\tk\nchr1\t2\t2\t+\ta\n")
	expect.EQ(t, stats.Rows, int64(1))
}

func TestConvertLineEndings(t *testing.T) {
	// CRLF terminators are stripped, and the last line needs no terminator.
	in := "track\r\nchr1\t1\t2\tk=a\t.\t+\r\nchr1\t3\t4\tk=b\t.\t-"
	out, stats, err := convertString(t, in, DefaultOpts)
	assert.NoError(t, err)
	expect.EQ(t, out, "CHROM\tSTART\tEND\tSTRAND\tk\nchr1\t2\t2\t+\ta\nchr1\t4\t4\t-\tb\n")
	expect.EQ(t, stats.Rows, int64(2))
}

func TestConvertProgress(t *testing.T) {
	in := generateBED(10001)
	logger := &recordingLogger{}
	opts := DefaultOpts
	opts.Logger = logger
	out, stats, err := convertString(t, in, opts)
	assert.NoError(t, err)
	expect.EQ(t, stats.Rows, int64(10001))
	expect.EQ(t, logger.msgs, []string{"Written 10000 lines"})

	// Logging has no effect on the output.
	quiet := DefaultOpts
	quiet.ProgressInterval = 0
	outQuiet, _, err := convertString(t, in, quiet)
	assert.NoError(t, err)
	expect.True(t, out == outQuiet)
}

func TestConvertProgressInterval(t *testing.T) {
	logger := &recordingLogger{}
	_, _, err := convertString(t, generateBED(7), Opts{Logger: logger, ProgressInterval: 3})
	assert.NoError(t, err)
	expect.EQ(t, logger.msgs, []string{"Written 3 lines", "Written 6 lines"})
}
