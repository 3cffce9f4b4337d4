package main

import (
	"context"
	"encoding/json"
	"fmt"
	"hotelclient/internal/domains/booking/model/dto"
	"hotelclient/internal/domains/booking/service"
	"hotelclient/shared/constant"
	"hotelclient/shared/failure"
	"hotelclient/shared/logger"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const usage = "usage: bookreq check <file|->, bookreq compare <file> <file>, bookreq nights <file|->"

var errUsage = errors.New(usage)

type command struct {
	service service.Booking
	stdin   io.Reader
	stdout  io.Writer
}

// execute runs args and returns the process exit status, logging any failure with its stack.
func (c command) execute(ctx context.Context, args []string) int {
	if err := c.run(ctx, args); err != nil {
		logger.ErrorWithStack(err)
		log.Error().Int("code", failure.GetCode(err)).Msg("bookreq failed")

		return 1
	}

	return 0
}

func (c command) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "check":
		if len(args) != 2 {
			return errUsage
		}

		return c.check(ctx, args[1])
	case "compare":
		if len(args) != 3 {
			return errUsage
		}

		return c.compare(ctx, args[1], args[2])
	case "nights":
		if len(args) != 2 {
			return errUsage
		}

		return c.nights(ctx, args[1])
	default:
		return errors.Wrapf(errUsage, "unknown command %q", args[0])
	}
}

func (c command) check(ctx context.Context, path string) error {
	req, err := c.load(ctx, path)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return failure.InternalError(errors.Wrap(err, "failed to encode booking request")) //nolint:wrapcheck
	}

	return c.print("%s\n%s\n", req, payload)
}

func (c command) compare(ctx context.Context, pathA, pathB string) error {
	a, err := c.load(ctx, pathA)
	if err != nil {
		return err
	}

	b, err := c.load(ctx, pathB)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(c.service.Compare(ctx, a, b), "", "  ")
	if err != nil {
		return failure.InternalError(errors.Wrap(err, "failed to encode comparison")) //nolint:wrapcheck
	}

	return c.print("%s\n", payload)
}

func (c command) nights(ctx context.Context, path string) error {
	req, err := c.load(ctx, path)
	if err != nil {
		return err
	}

	return c.print("%d\n", req.Nights())
}

// print writes to stdout; a failed write is never the caller's fault.
func (c command) print(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.stdout, format, args...); err != nil {
		return failure.InternalError(errors.Wrap(err, "failed to write output")) //nolint:wrapcheck
	}

	return nil
}

func (c command) load(ctx context.Context, path string) (dto.BookingRequest, error) {
	if path == constant.StdinPath {
		return c.service.Decode(ctx, c.stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return dto.BookingRequest{}, errors.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	return c.service.Decode(ctx, file)
}
