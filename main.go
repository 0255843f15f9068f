package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/tinyrange/glsafe/gl"
)

var (
	nameColour = color.New(color.FgGreen).SprintFunc()
	missColour = color.New(color.FgHiRed).SprintFunc()
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("glsafe: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "glsafe",
		Usage: "inspect the OpenGL enumerations known to the gl package",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Usage: "disable coloured output"},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "show which enumerations contain the given values",
				ArgsUsage: "<value>...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "enum", Aliases: []string{"e"}, Usage: "only decode against `TYPE`"},
				},
				Action: decodeCommand,
			},
			{
				Name:      "list",
				Usage:     "list the variants of an enumeration",
				ArgsUsage: "<type>",
				Action:    listCommand,
			},
			{
				Name:   "enums",
				Usage:  "list every enumeration and bitflag type",
				Action: enumsCommand,
			},
		},
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	return table
}

// parseValue accepts decimal, 0x-prefixed hex and 0-prefixed octal.
func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return uint32(v), nil
}

func hex(v uint32) string {
	return fmt.Sprintf("0x%04X", v)
}

// describe names v as a variant of d. Bitflag values are named as the union
// of their bits; partial is set when unnamed bits remain.
func describe(d gl.EnumDescriptor, v uint32) (name string, ok, partial bool) {
	if variant, found := d.Lookup(v); found {
		return variant.Name, true, false
	}
	if !d.Bitflag || v == 0 {
		return "", false, false
	}
	set, rest := d.Decompose(v)
	if len(set) == 0 {
		return "", false, false
	}
	names := make([]string, 0, len(set)+1)
	for _, variant := range set {
		names = append(names, variant.Name)
	}
	if rest != 0 {
		names = append(names, hex(rest))
	}
	return strings.Join(names, "|"), true, rest != 0
}

func decodeCommand(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("decode: no values given")
	}

	catalog := gl.EnumCatalog()
	if name := ctx.String("enum"); name != "" {
		d, ok := gl.LookupEnum(name)
		if !ok {
			return fmt.Errorf("decode: unknown enumeration %q", name)
		}
		catalog = []gl.EnumDescriptor{d}
	}

	table := newTable(ctx.App.Writer, "Value", "Type", "Name")
	for _, arg := range ctx.Args().Slice() {
		v, err := parseValue(arg)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		matched := false
		for _, d := range catalog {
			name, ok, partial := describe(d, v)
			if !ok || partial && len(catalog) > 1 {
				continue
			}
			matched = true
			if partial {
				name = missColour(name)
			} else {
				name = nameColour(name)
			}
			table.Append([]string{hex(v), d.Name, name})
		}
		if !matched {
			table.Append([]string{hex(v), "", missColour("unknown")})
		}
	}
	table.Render()
	return nil
}

func listCommand(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("list: expected one enumeration name")
	}
	d, ok := gl.LookupEnum(ctx.Args().First())
	if !ok {
		return fmt.Errorf("list: unknown enumeration %q", ctx.Args().First())
	}

	table := newTable(ctx.App.Writer, "Name", "Value")
	for _, v := range d.Variants {
		table.Append([]string{nameColour(v.Name), hex(v.Value)})
	}
	table.Render()
	return nil
}

func enumsCommand(ctx *cli.Context) error {
	table := newTable(ctx.App.Writer, "Type", "Kind", "Variants")
	for _, d := range gl.EnumCatalog() {
		kind := "enum"
		if d.Bitflag {
			kind = "bitflag"
		}
		table.Append([]string{d.Name, kind, strconv.Itoa(len(d.Variants))})
	}
	table.Render()
	return nil
}
