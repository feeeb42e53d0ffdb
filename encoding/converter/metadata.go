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
	"strings"
)

// Metadata is the parsed form of a BED name column holding
// "key1=value1;key2=value2;..." annotations.  Keys are unique, and they are
// kept in the order of their first occurrence.
type Metadata struct {
	keys   []string
	values []string
	// index maps a key to its position in keys/values.  Nil until the first
	// set call.
	index map[string]int
}

// ParseMetadata splits s on ';', then splits each entry on its first '='.  A
// repeated key overwrites the earlier value but keeps the earlier position.
//
// An entry without '=' yields a *MalformedMetadataError.  This includes the
// empty entry produced by an empty string or a trailing ';'.
func ParseMetadata(s string) (Metadata, error) {
	var md Metadata
	for _, entry := range strings.Split(s, ";") {
		eq := strings.IndexByte(entry, '=')
		if eq < 0 {
			return Metadata{}, &MalformedMetadataError{Entry: entry, Metadata: s}
		}
		md.set(entry[:eq], entry[eq+1:])
	}
	return md, nil
}

func (md *Metadata) set(key, value string) {
	if i, ok := md.index[key]; ok {
		md.values[i] = value
		return
	}
	if md.index == nil {
		md.index = make(map[string]int)
	}
	md.index[key] = len(md.keys)
	md.keys = append(md.keys, key)
	md.values = append(md.values, value)
}

// Len returns the number of distinct keys.
func (md Metadata) Len() int { return len(md.keys) }

// Keys returns the keys in first-occurrence order.  The caller must not modify
// the returned slice.
func (md Metadata) Keys() []string { return md.keys }

// Values returns the values, aligned with Keys().  The caller must not modify
// the returned slice.
func (md Metadata) Values() []string { return md.values }

// Get looks up the value for key.
func (md Metadata) Get(key string) (string, bool) {
	i, ok := md.index[key]
	if !ok {
		return "", false
	}
	return md.values[i], true
}
