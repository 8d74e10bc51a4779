package brc

import "fmt"

// ParseError reports a temperature that does not match -?\d{1,2}\.\d.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid temperature %q: %s", e.Input, e.Reason)
}

func parseErr(value []byte, reason string) error {
	return &ParseError{Input: string(value), Reason: reason}
}

// ParseTemp decodes a temperature like "-12.3" into tenths of a degree.
//
// strconv.ParseFloat shows up at the top of every profile and drags
// rounding errors in, so digits are decoded by hand. The integer part
// may be one or two digits wide, the fraction is always one digit.
func ParseTemp(value []byte) (int, error) {
	n := len(value)
	i := 0
	neg := false
	if n > 0 && value[0] == '-' {
		neg = true
		i++
	}

	// at least "d.d" after the sign
	if n-i < 3 {
		return 0, parseErr(value, "too short")
	}
	if value[n-2] != '.' {
		return 0, parseErr(value, "missing dot before last digit")
	}
	if n-i-2 > 2 {
		return 0, parseErr(value, "out of range")
	}

	t := 0
	for ; i < n-2; i++ {
		d := value[i] - '0'
		if d > 9 {
			return 0, parseErr(value, "not a digit")
		}
		t = t*10 + int(d)
	}
	d := value[n-1] - '0'
	if d > 9 {
		return 0, parseErr(value, "not a digit")
	}
	t = t*10 + int(d)

	if neg {
		return -t, nil
	}
	return t, nil
}
