package iocli

import "strings"

// Confirmer asks yes/no questions over an IO. Anything other than an
// explicit yes counts as no.
type Confirmer struct {
	io IO
}

func NewConfirmer(io IO) *Confirmer {
	return &Confirmer{io: io}
}

func (c *Confirmer) Confirm(prompt string) (bool, error) {
	answer, err := c.io.ReadInput(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
