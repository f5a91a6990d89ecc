package fitnesstools

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownSex     = errors.New("unknown sex")
	ErrUnknownFormula = errors.New("unknown e1rm formula")
)

var formulaNames = map[Formula]string{
	Epley:   "epley",
	Brzycki: "brzycki",
	Adams:   "adams",
	Baechle: "baechle",
	Average: "average",
}

// Formulas returns every formula, the composite Average last.
func Formulas() []Formula {
	return []Formula{Epley, Brzycki, Adams, Baechle, Average}
}

func (f Formula) String() string {
	if name, ok := formulaNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ParseFormula looks a formula up by name, ignoring case and surrounding
// spaces. "all" is accepted as an alias for "average".
func ParseFormula(s string) (Formula, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "all" {
		return Average, nil
	}

	for f, n := range formulaNames {
		if n == name {
			return f, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormula, s)
}

func (f Formula) MarshalText() ([]byte, error) {
	if _, ok := formulaNames[f]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormula, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Formula) UnmarshalText(text []byte) error {
	parsed, err := ParseFormula(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// ParseSex accepts "male", "female", "m" and "f" in any case.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSex, s)
	}
}

func (s Sex) MarshalText() ([]byte, error) {
	if s != Male && s != Female {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSex, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Sex) UnmarshalText(text []byte) error {
	parsed, err := ParseSex(string(text))
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
