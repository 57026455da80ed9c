/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package probe

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hypermodeinc/parsec/x"
)

// Expect is the outcome a case file expects. Rest is only checked when set.
type Expect struct {
	OK     bool    `yaml:"ok"`
	Result string  `yaml:"result,omitempty"`
	Rest   *string `yaml:"rest,omitempty"`
	Error  string  `yaml:"error,omitempty"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

// Decode reads a YAML document with a top level "cases" list.
func Decode(r io.Reader) ([]Case, error) {
	var f caseFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "while decoding cases")
	}
	for i, c := range f.Cases {
		if c.Primitive == "" {
			return nil, errors.Errorf("case %d (%q) has no primitive", i, c.Name)
		}
	}
	return f.Cases, nil
}

// Load reads cases from the YAML file at path.
func Load(path string) ([]Case, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "while opening %s", path)
	}
	defer func() { x.Ignore(fd.Close()) }()
	return Decode(fd)
}

// Check compares o with the case's expectation. A case without one always
// passes.
func (c Case) Check(o Outcome) error {
	e := c.Expect
	if e == nil {
		return nil
	}
	if o.OK != e.OK {
		if o.Err != nil {
			return errors.Errorf("expected ok=%v, got error %q", e.OK, o.Err.Error())
		}
		return errors.Errorf("expected ok=%v, got result %q", e.OK, o.Result)
	}
	if e.OK && o.Result != e.Result {
		return errors.Errorf("expected result %q, got %q", e.Result, o.Result)
	}
	if !e.OK && e.Error != "" && o.Err.Error() != e.Error {
		return errors.Errorf("expected error %q, got %q", e.Error, o.Err.Error())
	}
	if e.Rest != nil && o.Rest != *e.Rest {
		return errors.Errorf("expected remaining input %q, got %q", *e.Rest, o.Rest)
	}
	return nil
}
