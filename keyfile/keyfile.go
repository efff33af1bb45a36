/*
Package keyfile parses key descriptions from YAML documents: the split
conditions and categorical features of one tensor, plus the statistics
configurations to pair it with.

The YAML document is expected to look like

	splits:
	  - feature: 4
	    bin: 2
	    kind: exact-bin
	cat_features: [9, 11]
	ctrs:
	  - kind: borders
	    prior: 1/2
	    border_count: 15

Split kinds are exact-bin and greater-than; ctr kinds are borders,
buckets, float-target-mean and feature-freq. Priors are integer ratios
written num/denom, a plain integer meaning denominator 1.
*/
package keyfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v2"

	"github.com/grovekit/ctrkey/ctr"
	"github.com/grovekit/ctrkey/ctrconf"
	"github.com/grovekit/ctrkey/split"
	"github.com/grovekit/ctrkey/tensor"
)

type description struct {
	Splits []struct {
		Feature uint32 `yaml:"feature"`
		Bin     uint32 `yaml:"bin"`
		Kind    string `yaml:"kind"`
	} `yaml:"splits"`
	CatFeatures []uint32 `yaml:"cat_features"`
	Ctrs        []struct {
		Kind        string `yaml:"kind"`
		Prior       string `yaml:"prior"`
		BorderCount uint32 `yaml:"border_count"`
	} `yaml:"ctrs"`
}

/*
ReadKeys takes a slice of bytes with a key description in YAML and
returns one ctr.Ctr per described configuration, all sharing the
described tensor, or an error. A description without ctrs yields no
keys; use ReadTensor to parse the tensor alone.
*/
func ReadKeys(md []byte) ([]ctr.Ctr, error) {
	desc, err := parse(md)
	if err != nil {
		return nil, err
	}
	t, err := desc.tensor()
	if err != nil {
		return nil, err
	}
	configs, err := desc.configs()
	if err != nil {
		return nil, err
	}
	keys := make([]ctr.Ctr, 0, len(configs))
	for _, c := range configs {
		keys = append(keys, ctr.New(t, c))
	}
	return keys, nil
}

/*
ReadTensor takes a slice of bytes with a key description in YAML and
returns the canonical tensor it describes, ignoring any ctrs section.
*/
func ReadTensor(md []byte) (tensor.Tensor, error) {
	desc, err := parse(md)
	if err != nil {
		return tensor.Tensor{}, err
	}
	return desc.tensor()
}

/*
ReadKeysFromFile takes a filepath string, reads its contents and uses
ReadKeys to parse it. If the file cannot be read an error is returned.
*/
func ReadKeysFromFile(filepath string) ([]ctr.Ctr, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading key description file %s: %v", filepath, err)
	}
	keys, err := ReadKeys(md)
	if err != nil {
		err = fmt.Errorf("parsing key description file %s: %v", filepath, err)
	}
	return keys, err
}

func parse(md []byte) (*description, error) {
	desc := &description{}
	if err := yaml.Unmarshal(md, desc); err != nil {
		return nil, fmt.Errorf("parsing yml key description: %v", err)
	}
	return desc, nil
}

func (d *description) tensor() (tensor.Tensor, error) {
	b := tensor.NewBuilder()
	for _, s := range d.Splits {
		kind, err := parseSplitKind(s.Kind)
		if err != nil {
			return tensor.Tensor{}, err
		}
		b.AddSplit(split.New(s.Feature, s.Bin, kind))
	}
	b.AddCatFeatures(d.CatFeatures)
	return b.Build(), nil
}

func (d *description) configs() ([]ctr.Config, error) {
	configs := make([]ctr.Config, 0, len(d.Ctrs))
	for _, c := range d.Ctrs {
		kind, err := parseCtrKind(c.Kind)
		if err != nil {
			return nil, err
		}
		num, denom, err := parsePrior(c.Prior)
		if err != nil {
			return nil, err
		}
		configs = append(configs, ctrconf.New(kind, num, denom, c.BorderCount))
	}
	return configs, nil
}

func parseSplitKind(kind string) (split.Kind, error) {
	switch kind {
	case "exact-bin", "":
		return split.ExactBin, nil
	case "greater-than":
		return split.GreaterThan, nil
	}
	return 0, fmt.Errorf("unknown split kind %q", kind)
}

func parseCtrKind(kind string) (ctrconf.Kind, error) {
	switch kind {
	case "borders", "":
		return ctrconf.Borders, nil
	case "buckets":
		return ctrconf.Buckets, nil
	case "float-target-mean":
		return ctrconf.FloatTargetMean, nil
	case "feature-freq":
		return ctrconf.FeatureFreq, nil
	}
	return 0, fmt.Errorf("unknown ctr kind %q", kind)
}

func parsePrior(prior string) (uint32, uint32, error) {
	if prior == "" {
		return 1, 1, nil
	}
	parts := strings.SplitN(prior, "/", 2)
	num, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing prior %q: %v", prior, err)
	}
	denom := uint64(1)
	if len(parts) == 2 {
		denom, err = strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("parsing prior %q: %v", prior, err)
		}
		if denom == 0 {
			return 0, 0, fmt.Errorf("parsing prior %q: zero denominator", prior)
		}
	}
	return uint32(num), uint32(denom), nil
}
