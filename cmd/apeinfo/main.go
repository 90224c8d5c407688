// Copyright 2017 Tom Thorogood. All rights reserved.
// Use of this source code is governed by a Modified
// BSD License that can be found in the LICENSE file.

// Command apeinfo prints the APEv2 items stored in each file given on
// the command line, one line per item, in the style of the reference
// ApeInfo_process/ApeTag_print/ApeItem_print (apeinfo.c).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/tmthrgd/apetag/ape"
)

func main() {
	flag.Parse()

	logger := level.NewFilter(log.NewLogfmtLogger(os.Stderr), level.AllowInfo())

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s file [...]\n", os.Args[0])
		os.Exit(1)
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := process(logger, path); err != nil {
			level.Error(logger).Log("file", path, "err", err)
			exit = 1
		}
	}

	os.Exit(exit)
}

func process(logger log.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tag := ape.New(f)
	defer tag.Close()

	exists, err := tag.Exists()
	if err != nil {
		return err
	}

	if !exists {
		fmt.Printf("%s: no ape tag\n\n", path)
		return nil
	}

	items, err := tag.Items()
	if err != nil {
		return err
	}

	fmt.Printf("%s (%d items):\n", path, len(items))
	for _, it := range items {
		fmt.Println(renderItem(it))
	}
	fmt.Println()

	return nil
}

// renderItem formats one item as "<key>: <value-rendering>".
func renderItem(it ape.Item) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s: ", it.Key)

	switch it.Kind {
	case ape.ItemBinary:
		buf.WriteString("[BINARY DATA]")
	case ape.ItemReserved:
		buf.WriteString("[RESERVED]")
	default:
		if it.Kind == ape.ItemExternal {
			buf.WriteString("[EXTERNAL LOCATION] ")
		}
		for _, c := range it.Value {
			switch {
			case c == 0x00:
				buf.WriteString(", ")
			case c < 0x20:
				fmt.Fprintf(&buf, "\\%03o", c)
			case c == '\\':
				buf.WriteString("\\\\")
			default:
				buf.WriteByte(c)
			}
		}
	}

	if it.Access == ape.AccessReadOnly {
		buf.WriteString(" [READ_ONLY]")
	}

	return buf.String()
}
