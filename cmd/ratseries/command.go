package main

import (
	"fmt"
	"strconv"

	"github.com/govalues/rational"
	"github.com/urfave/cli/v2"
)

func eCmd(c *cli.Context) error {
	e, err := eulerSum(c.Int64("terms"), c.Bool("checked"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "e ≈ %v ≈ %v\n", e, e.Float64())
	return nil
}

func zenoCmd(c *cli.Context) error {
	z, err := zenoSum(c.Int64("terms"), c.Bool("checked"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "1 ≈ %v ≈ %v\n", z, z.Float64())
	return nil
}

func calcCmd(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return fmt.Errorf("calc expects 3 arguments A OP B, got %d", c.Args().Len())
	}
	a, err := rational.Parse(c.Args().Get(0))
	if err != nil {
		return err
	}
	b, err := rational.Parse(c.Args().Get(2))
	if err != nil {
		return err
	}
	out, err := calc(a, c.Args().Get(1), b, c.Bool("checked"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, out)
	return nil
}

func approxCmd(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("approx expects 1 argument FLOAT, got %d", c.Args().Len())
	}
	f, err := strconv.ParseFloat(c.Args().First(), 64)
	if err != nil {
		return err
	}
	r, err := rational.Approx(f, c.Int64("max-denom"))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%v ≈ %v ≈ %v\n", f, r, r.Float64())
	return nil
}
