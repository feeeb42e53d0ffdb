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
package main

// See doc.go for documentation

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bedtsv/encoding/converter"
)

var (
	bgzip            = flag.Bool("bgzip", converter.DefaultOpts.BGZF, "Write BGZF (tabix-indexable gzip) instead of plain gzip")
	parallelism      = flag.Int("parallelism", converter.DefaultOpts.Parallelism, "Number of BGZF compression workers; ignored without -bgzip")
	progressInterval = flag.Int64("progress-interval", converter.DefaultOpts.ProgressInterval, "Log progress every N data rows; 0 disables")
)

func bioBEDToTSVUsage() {
	fmt.Printf("Usage: %s [OPTIONS] in.bed.gz out.tsv.gz\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

// run converts args[0] to args[1].
func run(args []string, opts converter.Opts) error {
	if len(args) != 2 {
		return fmt.Errorf("expected two positional arguments (input and output path), got %d: '%s'",
			len(args), strings.Join(args, " "))
	}
	return converter.BEDToTSV(vcontext.Background(), args[0], args[1], opts)
}

func main() {
	flag.Usage = bioBEDToTSVUsage
	shutdown := grail.Init()
	defer shutdown()

	opts := converter.Opts{
		Logger:           log.Info,
		ProgressInterval: *progressInterval,
		BGZF:             *bgzip,
		Parallelism:      *parallelism,
	}
	if err := run(flag.Args(), opts); err != nil {
		log.Panicf("%v", err)
	}
}
