// seehuhn.de/go/love - constants for the LÖVE graphics API
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command loveenum writes the LÖVE constant table to JSON. The output is
// the reference used by the tests in the root package; run it from the
// module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/love"
)

func main() {
	out := flag.String("o", "", "output file (default: standard output)")
	flag.Parse()

	if err := run(*out, createFile); err != nil {
		panic(err)
	}
}

func createFile(fname string) (io.WriteCloser, error) {
	return os.Create(fname)
}

// run writes the table to fname, or to standard output if fname is empty.
// Errors from closing the file are reported.
func run(fname string, create func(string) (io.WriteCloser, error)) (err error) {
	if fname == "" {
		return writeTable(os.Stdout, love.Table())
	}

	f, err := create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", fname, cerr)
		}
	}()

	if err = writeTable(f, love.Table()); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return nil
}

type jsonTable struct {
	Categories []jsonCategory `json:"categories"`
}

type jsonCategory struct {
	Name    string       `json:"name"`
	Members []jsonMember `json:"members"`
}

type jsonMember struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

func writeTable(w io.Writer, table []love.Category) error {
	var out jsonTable
	for _, c := range table {
		jc := jsonCategory{Name: c.Name}
		for _, m := range c.Members {
			jc.Members = append(jc.Members, jsonMember{Name: m.Name, Value: m.Value})
		}
		out.Categories = append(out.Categories, jc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
