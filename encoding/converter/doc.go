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
Package converter turns BED-like interval files whose name column carries
"key=value;key=value" annotations into TSV files with one column per key.
Start coordinates are shifted from BED's 0-based convention to 1-based.
The key set of the first data row fixes the output header; later rows are
assumed to repeat it.
*/
package converter
