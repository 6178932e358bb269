package main

import (
	"context"
	"errors"
	"fmt"
	"image/draw"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bodgit/img2src"
	"github.com/bodgit/img2src/ascii"
	"github.com/bodgit/img2src/catalog"
	"github.com/bodgit/img2src/source"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func init() {
	// -v is taken by --varname
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

var errOutputAndDirectory = errors.New("--output and --directory cannot be combined")

func reductionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "preset",
			Aliases: []string{"p"},
			Usage:   "use the options suited to a target: arduboy, cos or cosmono",
		},
		&cli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Value:   img2src.RGB565.String(),
			Usage:   "output format: rgb565, monov (or mono) or monoh",
		},
		&cli.StringFlag{
			Name:    "background",
			Aliases: []string{"c"},
			Value:   "#000000",
			Usage:   "background color as #rrggbb or 0xRRGGBB",
		},
		&cli.BoolFlag{
			Name:    "invert",
			Aliases: []string{"i"},
			Usage:   "invert the colors of the reduced image",
		},
		&cli.BoolFlag{
			Name:  "adaptive",
			Usage: "choose the monochrome threshold from the image content",
		},
		&cli.UintFlag{
			Name:  "width",
			Usage: "resize the image to this width before converting",
		},
		&cli.UintFlag{
			Name:  "height",
			Usage: "resize the image to this height before converting",
		},
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

// options builds the conversion options from the preset, if any, overridden
// by any flags given explicitly.
func options(c *cli.Context) (img2src.Options, error) {
	o := img2src.DefaultOptions()

	if c.IsSet("preset") {
		p, err := img2src.ParsePreset(c.String("preset"))
		if err != nil {
			return o, err
		}
		o.ApplyPreset(p)
	}

	if c.IsSet("mode") || !c.IsSet("preset") {
		m, err := img2src.ParseMode(c.String("mode"))
		if err != nil {
			return o, err
		}
		o.Mode = m
	}

	if c.IsSet("background") || !c.IsSet("preset") {
		bg, err := img2src.ParseColor(c.String("background"))
		if err != nil {
			return o, err
		}
		o.Background = bg
	}

	o.Invert = c.Bool("invert")
	o.Adaptive = c.Bool("adaptive")

	return o, nil
}

func openCatalog(c *cli.Context) (*catalog.Catalog, error) {
	if c.String("db") == "" {
		return nil, nil
	}
	return catalog.Open(c.String("db"))
}

func convert(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	o, err := options(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if c.IsSet("vartype") {
		o.VariableType = c.String("vartype")
	}
	if c.IsSet("dimensions") {
		o.IncludeDimensions = c.Bool("dimensions")
	}
	o.ASCIIArt = c.Bool("ascii")

	output, directory := c.String("output"), c.String("directory")
	if output != "" && directory != "" {
		return cli.NewExitError(errOutputAndDirectory, 1)
	}

	files := c.Args().Slice()

	// Multiple images are appended to a single output file, so start afresh
	appendFile := false
	if output != "" {
		if err := os.Remove(output); err != nil && !os.IsNotExist(err) {
			return cli.NewExitError(err, 1)
		}
		appendFile = len(files) > 1
	}

	jobs := make([]img2src.Job, 0, len(files))
	for _, file := range files {
		job := img2src.Job{
			File:    file,
			Options: o,
			Width:   c.Uint("width"),
			Height:  c.Uint("height"),
		}
		if c.IsSet("varname") {
			job.Options.VariableName = c.String("varname")
		} else {
			job.Options.VariableName = img2src.DefaultVariableName(file)
		}
		switch {
		case output != "":
			job.Output = output
		case directory != "":
			job.Output = filepath.Join(directory, img2src.DefaultOutputFilename(file, false))
		default:
			job.Output = img2src.DefaultOutputFilename(file, true)
		}
		jobs = append(jobs, job)
	}

	cat, err := openCatalog(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if cat != nil {
		defer cat.Close()
	}

	logger := newLogger(c)
	conv := img2src.New(cat, logger)

	if err := conv.ConvertFiles(context.Background(), jobs, runtime.NumCPU(), func(job img2src.Job, f *img2src.Fragment) error {
		logger.Printf("Writing \"%s\" to \"%s\"\n", job.Options.VariableName, job.Output)
		return img2src.WriteFile(job.Output, f, appendFile)
	}); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func loadAndReduce(c *cli.Context) (*source.Source, img2src.Options, draw.Image, error) {
	o, err := options(c)
	if err != nil {
		return nil, o, nil, err
	}

	src, err := source.Load(c.Args().First())
	if err != nil {
		return nil, o, nil, err
	}
	src = src.Resize(c.Uint("width"), c.Uint("height"))

	m, err := img2src.Reduce(src.Image, &o)
	if err != nil {
		return nil, o, nil, err
	}

	return src, o, m, nil
}

func preview(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	src, o, m, err := loadAndReduce(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	am, ok := m.(ascii.Image)
	if !ok {
		return cli.NewExitError(fmt.Errorf("no ASCII rendering for %s", o.Mode), 1)
	}

	b := m.Bounds()
	color.New(color.Bold).Fprintf(os.Stdout, "%s: %dx%d %s\n", src.Name, b.Dx(), b.Dy(), o.Mode)
	if err := ascii.Render(os.Stdout, am); err != nil {
		return cli.NewExitError(err, 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "img2src"
	app.Usage = "Convert images into C source for microcontroller displays"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"IMG2SRC_DB"},
			Usage:   "path to a database caching previous conversions",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert images into C arrays",
			Description: "Each image is written to a .c file next to it unless --output or --directory is given.",
			ArgsUsage:   "FILE...",
			Flags: append(reductionFlags(),
				&cli.StringFlag{
					Name:    "varname",
					Aliases: []string{"v"},
					Usage:   "variable name, derived from the file name if not given",
				},
				&cli.StringFlag{
					Name:    "vartype",
					Aliases: []string{"t"},
					Value:   img2src.DefaultOptions().VariableType,
					Usage:   "C type of the generated array",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write every image to this file",
				},
				&cli.StringFlag{
					Name:    "directory",
					Aliases: []string{"e"},
					Usage:   "write the generated files into this directory",
				},
				&cli.BoolFlag{
					Name:    "dimensions",
					Aliases: []string{"d"},
					Usage:   "start the array with the image width and height",
				},
				&cli.BoolFlag{
					Name:    "ascii",
					Aliases: []string{"a"},
					Usage:   "include an ASCII art rendering as comments",
				},
			),
			Action: convert,
		},
		{
			Name:      "preview",
			Usage:     "Print the reduced image as ASCII art",
			ArgsUsage: "FILE",
			Flags:     reductionFlags(),
			Action:    preview,
		},
		{
			Name:      "push",
			Usage:     "Send the packed image data to a display over a serial port",
			ArgsUsage: "FILE",
			Flags: append(reductionFlags(),
				&cli.StringFlag{
					Name:  "port",
					Value: defaultSerialPort,
					Usage: "serial device",
				},
				&cli.IntFlag{
					Name:  "baud",
					Value: defaultBaudRate,
					Usage: "baud rate",
				},
			),
			Action: push,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
