package tuning

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BronyUraj/ss14/blocking"
	"github.com/BronyUraj/ss14/mobstate"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

type Tuning struct {
	StripDivisors map[string]float64         `yaml:"strip_divisors"`
	Actions       []blocking.ActionPrototype `yaml:"actions"`
	Messages      Messages                   `yaml:"messages"`
}

// Default returns the tuning embedded in the binary.
func Default() Tuning {
	t, err := parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a tuning file. An empty path loads the default tuning.
func Load(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, err
	}
	return parse(raw)
}

func parse(raw []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

// Divisors converts the strip divisors to the states they apply to.
func (t Tuning) Divisors() (map[mobstate.State]float64, error) {
	out := make(map[mobstate.State]float64, len(t.StripDivisors))
	for name, div := range t.StripDivisors {
		s, err := mobstate.ParseState(name)
		if err != nil {
			return nil, fmt.Errorf("strip_divisors: %w", err)
		}
		if div <= 0 {
			return nil, fmt.Errorf("strip_divisors: %s must be positive, got %v", name, div)
		}
		out[s] = div
	}
	return out, nil
}

// Prototype looks up an action prototype by id. It is meant to be passed as blocking.Config.Prototypes.
func (t Tuning) Prototype(id string) (blocking.ActionPrototype, bool) {
	for _, p := range t.Actions {
		if p.ID == id {
			return p, true
		}
	}
	return blocking.ActionPrototype{}, false
}

// Messages maps message keys to their text. Arguments are written as {name}.
type Messages map[string]string

// GetString returns the text of key with its arguments filled in. Unknown keys are returned as is.
func (m Messages) GetString(key string, args map[string]string) string {
	text, ok := m[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return text
	}
	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
