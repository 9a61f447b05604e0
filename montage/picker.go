package montage

import (
	"fmt"
	"math/rand/v2"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// SectionPicker chooses which section of a montage to play. The choice is
// delegated to a tengo script that reads `sections`, `roll` and `previous`
// and assigns `section`.
type SectionPicker struct {
	compiled *tengo.Compiled
	previous string
	roll     func(n int) int
}

// NewSectionPicker compiles src. A nil picker falls back to a random pick.
func NewSectionPicker(src []byte) (*SectionPicker, error) {
	script := tengo.NewScript(src)
	_ = script.Add("sections", []interface{}{})
	_ = script.Add("roll", 0)
	_ = script.Add("previous", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("montage: compile section script: %w", err)
	}
	return &SectionPicker{
		compiled: compiled,
		roll:     rand.IntN,
	}, nil
}

// Pick returns one of sections. Script failures fall back to a random pick
// so an attack never stalls on a broken script.
func (s *SectionPicker) Pick(sections []string) (string, error) {
	if len(sections) == 0 {
		return "", nil
	}
	if s == nil || s.compiled == nil {
		return sections[rand.IntN(len(sections))], nil
	}

	roll := s.roll(1 << 16)
	picked, err := s.run(sections, roll)
	if err != nil || !contains(sections, picked) {
		picked = sections[roll%len(sections)]
	}
	s.previous = picked
	return picked, err
}

func (s *SectionPicker) run(sections []string, roll int) (string, error) {
	values := make([]interface{}, len(sections))
	for i, name := range sections {
		values[i] = name
	}
	if err := s.compiled.Set("sections", values); err != nil {
		return "", fmt.Errorf("montage: set sections: %w", err)
	}
	if err := s.compiled.Set("roll", roll); err != nil {
		return "", fmt.Errorf("montage: set roll: %w", err)
	}
	if err := s.compiled.Set("previous", s.previous); err != nil {
		return "", fmt.Errorf("montage: set previous: %w", err)
	}
	if err := s.compiled.Run(); err != nil {
		return "", fmt.Errorf("montage: run section script: %w", err)
	}
	return s.compiled.Get("section").String(), nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
