package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/trevorbaca/baca-sub024/spacing"
)

type directionValue spacing.Direction

var _ pflag.Value = (*directionValue)(nil)

func (d *directionValue) String() string {
	return spacing.Direction(*d).String()
}

func (d *directionValue) Set(s string) error {
	switch s {
	case "up":
		*d = directionValue(spacing.Up)
	case "down":
		*d = directionValue(spacing.Down)
	default:
		return errors.Wrapf(spacing.ErrInvalidDirection, "got %q", s)
	}
	return nil
}

func (d *directionValue) Type() string {
	return "direction"
}
