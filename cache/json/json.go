/*
Package json provides a cache.TableEncodeDecoder that serializes
statistics tables as JSON documents.
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/grovekit/ctrkey/cache"
)

type tableEncodeDecoder struct{}

type jsonTable struct {
	Values      []float64 `json:"values"`
	SampleCount uint64    `json:"sampleCount"`
}

/*
New returns a cache.TableEncodeDecoder that encodes tables as JSON.
*/
func New() cache.TableEncodeDecoder {
	return &tableEncodeDecoder{}
}

func (ted *tableEncodeDecoder) Encode(t *cache.Table) ([]byte, error) {
	data, err := json.Marshal(&jsonTable{Values: t.Values, SampleCount: t.SampleCount})
	if err != nil {
		return nil, fmt.Errorf("encoding table as JSON: %v", err)
	}
	return data, nil
}

func (ted *tableEncodeDecoder) Decode(data []byte) (*cache.Table, error) {
	jt := &jsonTable{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON table: %v", err)
	}
	return &cache.Table{Values: jt.Values, SampleCount: jt.SampleCount}, nil
}
