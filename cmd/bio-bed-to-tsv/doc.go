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

/*
bio-bed-to-tsv converts a gzipped BED-like interval file whose name column
holds "key=value;key=value" annotations into a gzipped TSV with one column per
annotation key.

Usage: bio-bed-to-tsv [-bgzip] [-progress-interval=N] in.bed.gz out.tsv.gz

The first input line is treated as a header and dropped.  The output header is

  CHROM START END STRAND <key1> <key2> ...

where the keys come from the first data row.  START is converted from BED's
0-based convention to 1-based; END is copied unchanged.  All rows must carry
the same annotation keys, in the same order, as the first data row.
*/
package main
