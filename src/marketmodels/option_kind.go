package marketmodels

import "fmt"

type OptionKind string

const (
	Call OptionKind = "call"
	Put  OptionKind = "put"
)

func (k OptionKind) Validate() error {
	if k != Call && k != Put {
		return fmt.Errorf("OptionKind: Validate: invalid option kind: %s", k)
	}

	return nil
}

// Code returns the NSE suffix for the kind, CE for calls and PE for puts.
func (k OptionKind) Code() string {
	if k == Put {
		return "PE"
	}

	return "CE"
}

// OptionKindFromCode decodes the NSE CE/PE suffix. Any other code is
// malformed, never defaulted.
func OptionKindFromCode(code string) (OptionKind, error) {
	switch code {
	case "CE":
		return Call, nil
	case "PE":
		return Put, nil
	default:
		return "", fmt.Errorf("OptionKindFromCode: invalid kind code %q: %w", code, MalformedOptionSymbolErr)
	}
}
