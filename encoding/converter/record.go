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
	"strconv"
	"strings"

	"github.com/grailbio/base/tsv"
)

// Input column layout.  Column 4 (score) is ignored.
const (
	colChrom    = 0
	colStart    = 1
	colEnd      = 2
	colMetadata = 3
	colStrand   = 5

	minFields = 6
)

// fixedColumns are the leading output columns; the metadata keys of the first
// data row follow them.
var fixedColumns = []string{"CHROM", "START", "END", "STRAND"}

// Record is one output row.
type Record struct {
	Chrom string
	// Start is 1-based.
	Start int64
	// End is copied verbatim from the input.  BED ends are exclusive 0-based,
	// which is the same number as an inclusive 1-based end.
	End    string
	Strand string
	// Values holds the row's own metadata values in the row's own key order.
	// They line up with the header only when the row repeats the first row's
	// keys in the same order.
	Values []string
}

// Header returns the output header for a file whose first data row carried
// md.
func Header(md Metadata) []string {
	h := make([]string, 0, len(fixedColumns)+md.Len())
	h = append(h, fixedColumns...)
	return append(h, md.Keys()...)
}

// TransformRow converts the tab-separated input columns of data row number
// row (1-based) into an output record.  It also returns the row's parsed
// metadata so that the caller can derive the header from the first row.
func TransformRow(row int64, fields []string) (Record, Metadata, error) {
	md, err := rowMetadata(row, fields)
	if err != nil {
		return Record{}, Metadata{}, err
	}
	rec, err := newRecord(row, fields, md)
	if err != nil {
		return Record{}, Metadata{}, err
	}
	return rec, md, nil
}

// rowMetadata parses the metadata column of a data row.  It only needs the
// columns up to and including the metadata column.
func rowMetadata(row int64, fields []string) (Metadata, error) {
	if len(fields) <= colMetadata {
		return Metadata{}, &RowShapeError{Row: row, NumFields: len(fields)}
	}
	md, err := ParseMetadata(fields[colMetadata])
	if err != nil {
		if e, ok := err.(*MalformedMetadataError); ok {
			e.Row = row
		}
		return Metadata{}, err
	}
	return md, nil
}

// newRecord builds the output record from a data row whose metadata has
// already been parsed into md.
func newRecord(row int64, fields []string, md Metadata) (Record, error) {
	if len(fields) < minFields {
		return Record{}, &RowShapeError{Row: row, NumFields: len(fields)}
	}
	start, err := strconv.ParseInt(strings.TrimSpace(fields[colStart]), 10, 64)
	if err != nil {
		return Record{}, &NumericParseError{Row: row, Field: "START", Value: fields[colStart], Err: err}
	}
	return Record{
		Chrom:  fields[colChrom],
		Start:  start + 1, // 0-based -> 1-based
		End:    fields[colEnd],
		Strand: fields[colStrand],
		Values: md.Values(),
	}, nil
}

// write appends r as one line to w.
func (r *Record) write(w *tsv.Writer) error {
	w.WriteString(r.Chrom)
	w.WriteInt64(r.Start)
	w.WriteString(r.End)
	w.WriteString(r.Strand)
	for _, v := range r.Values {
		w.WriteString(v)
	}
	return w.EndLine()
}

// Fields returns r as output column strings.
func (r *Record) Fields() []string {
	f := make([]string, 0, len(fixedColumns)+len(r.Values))
	f = append(f, r.Chrom, strconv.FormatInt(r.Start, 10), r.End, r.Strand)
	return append(f, r.Values...)
}
