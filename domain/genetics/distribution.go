package genetics

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Distribution is a probability distribution over genotype or phenotype
// keys. It preserves insertion order (first-seen order during grid
// traversal) so repeated runs with identical input serialize identically
// and UI snapshots stay stable.
type Distribution struct {
	keys   []string
	values map[string]float64
}

// NewDistribution returns an empty distribution.
func NewDistribution() Distribution {
	return Distribution{keys: []string{}, values: map[string]float64{}}
}

// Add accumulates probability mass for key, registering the key on first
// sight.
func (d *Distribution) Add(key string, p float64) {
	if d.values == nil {
		d.values = map[string]float64{}
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] += p
}

// Get returns the mass for key and whether the key is present.
func (d Distribution) Get(key string) (float64, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d Distribution) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns the masses in key insertion order.
func (d Distribution) Values() []float64 {
	out := make([]float64, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.values[k])
	}
	return out
}

// Len returns the number of keys.
func (d Distribution) Len() int {
	return len(d.keys)
}

// Sum returns the total probability mass.
func (d Distribution) Sum() float64 {
	return floats.Sum(d.Values())
}

// Scale returns a copy with every mass multiplied by factor. The receiver
// is unchanged.
func (d Distribution) Scale(factor float64) Distribution {
	out := NewDistribution()
	for _, k := range d.keys {
		out.Add(k, d.values[k]*factor)
	}
	return out
}

// MarshalJSON emits a JSON object whose members appear in insertion order.
func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(d.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds a distribution from a JSON object. Go's decoder
// does not expose member order, so keys are re-registered in the order the
// raw object lists them.
func (d *Distribution) UnmarshalJSON(data []byte) error {
	*d = NewDistribution()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("distribution must be a JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var v float64
		if err := dec.Decode(&v); err != nil {
			return err
		}
		d.Add(key, v)
	}
	_, err = dec.Token()
	return err
}
