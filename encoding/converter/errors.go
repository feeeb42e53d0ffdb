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
	"fmt"
)

// Row numbers in the errors below count data rows from 1; the skipped first
// line of the input is not counted.

// MalformedMetadataError reports a metadata entry without a '=' separator.
type MalformedMetadataError struct {
	// Row is 0 when the error comes straight from ParseMetadata.
	Row      int64
	Entry    string
	Metadata string
}

func (e *MalformedMetadataError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: malformed metadata entry %q (no '=') in %q", e.Row, e.Entry, e.Metadata)
	}
	return fmt.Sprintf("malformed metadata entry %q (no '=') in %q", e.Entry, e.Metadata)
}

// NumericParseError reports a coordinate column that is not an integer.
type NumericParseError struct {
	Row   int64
	Field string
	Value string
	Err   error
}

func (e *NumericParseError) Error() string {
	return fmt.Sprintf("row %d: column %s: can't parse %q as an integer: %v", e.Row, e.Field, e.Value, e.Err)
}

// RowShapeError reports a data row with too few columns.
type RowShapeError struct {
	Row       int64
	NumFields int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("row %d: expected at least %d tab-separated columns, found %d", e.Row, minFields, e.NumFields)
}
