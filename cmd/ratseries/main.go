package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ratseries"
	app.Usage = "Exact partial sums and arithmetic with 64-bit rationals."
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:  "checked",
			Value: false,
			Usage: "fail with an overflow error instead of wrapping silently",
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "e",
			Usage:  "Approximate Euler's number by 1 + 1/1! + 1/2! + ... + 1/(terms-1)!",
			Action: eCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:    "terms",
					Aliases: []string{"n"},
					Value:   12,
					Usage:   "the number of terms of the series, at most 21",
				},
			},
		},
		{
			Name:   "zeno",
			Usage:  "Sum 1/2 + 1/4 + ... + 1/2^terms, which approaches but never reaches 1",
			Action: zenoCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:    "terms",
					Aliases: []string{"n"},
					Value:   19,
					Usage:   "the number of terms of the series, at most 62",
				},
			},
		},
		{
			Name:      "calc",
			Usage:     "Apply an arithmetic or comparison operator to two rationals",
			ArgsUsage: "A OP B, where OP is one of + - * x / < <= > >= == != cmp (use -- before negative operands)",
			Action:    calcCmd,
		},
		{
			Name:      "approx",
			Usage:     "Find the closest rational to a float with a bounded denominator",
			ArgsUsage: "FLOAT",
			Action:    approxCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:    "max-denom",
					Aliases: []string{"d"},
					Value:   1000,
					Usage:   "the largest denominator allowed",
				},
			},
		},
	}
	return app
}
