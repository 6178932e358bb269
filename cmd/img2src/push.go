package main

import (
	"fmt"

	"github.com/bodgit/img2src"
	"github.com/urfave/cli/v2"
	"go.bug.st/serial"
)

const (
	defaultSerialPort = "/dev/ttyUSB0"
	defaultBaudRate   = 115200
)

func push(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	logger := newLogger(c)

	src, o, m, err := loadAndReduce(c)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	data, err := img2src.Pack(m, o.Mode)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	port, err := serial.Open(c.String("port"), &serial.Mode{
		BaudRate: c.Int("baud"),
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return cli.NewExitError(fmt.Errorf("cannot open serial port %s: %w", c.String("port"), err), 1)
	}
	defer port.Close()

	n, err := port.Write(data)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	if n < len(data) {
		return cli.NewExitError(fmt.Errorf("wrote only %d of %d bytes", n, len(data)), 1)
	}

	logger.Printf("Sent \"%s\" as %s, %d bytes to %s\n", src.Name, o.Mode, n, c.String("port"))

	return nil
}
