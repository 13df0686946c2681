// Package cli implements the interactive menu session: prompting for
// operation fields, dispatching to the converter service, and rendering
// results and history as tables.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"unitdesk/internal/convert"
	"unitdesk/internal/logger"
	"unitdesk/internal/service"
)

// Menu choices, in display order.
const (
	choiceCalculator  = "1"
	choiceTemperature = "2"
	choiceNumberBase  = "3"
	choiceLogarithm   = "4"
	choiceCurrency    = "5"
	choiceLength      = "6"
	choiceHistory     = "7"
	choiceQuit        = "8"
)

// Session runs the read-evaluate-display loop over one input/output pair.
type Session struct {
	services *service.Service
	log      *logger.Logger
	in       *bufio.Scanner
	out      io.Writer
}

// NewSession wires the session to its services, logger, and terminal streams.
func NewSession(services *service.Service, log *logger.Logger, in io.Reader, out io.Writer) *Session {
	return &Session{
		services: services,
		log:      log,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run executes the menu loop until the user quits or input ends. Both are
// normal termination. Context cancellation stops the loop at the next menu
// iteration.
func (s *Session) Run(ctx context.Context) error {
	s.printBanner()
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(s.out)
			return nil
		}

		s.printMenu()
		line, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out)
			return nil
		}

		choice := strings.TrimSpace(line)
		switch choice {
		case choiceCalculator:
			if !s.runOperation(ctx, s.promptCalculator) {
				return nil
			}
		case choiceTemperature:
			if !s.runOperation(ctx, s.promptTemperature) {
				return nil
			}
		case choiceNumberBase:
			if !s.runOperation(ctx, s.promptNumberBase) {
				return nil
			}
		case choiceLogarithm:
			if !s.runOperation(ctx, s.promptLogarithm) {
				return nil
			}
		case choiceCurrency:
			if !s.runOperation(ctx, s.promptCurrency) {
				return nil
			}
		case choiceLength:
			if !s.runOperation(ctx, s.promptLength) {
				return nil
			}
		case choiceHistory:
			s.showHistory(ctx)
		case choiceQuit:
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			errorColor.Fprintf(s.out, "Unknown choice %q. Enter a number from 1 to 8.\n", choice)
		}
	}
}

// runOperation prompts for one operation's fields, executes it, and renders
// the outcome. Returns false when input ended mid-prompt.
func (s *Session) runOperation(ctx context.Context, build func() (convert.Operation, bool)) bool {
	op, ok := build()
	if !ok {
		return false
	}

	entry, err := s.services.Execute(ctx, op)
	if err != nil {
		s.log.Debugw("operation rejected", "err", err)
		errorColor.Fprintf(s.out, "Operation failed: %v\n", err)
		return true
	}
	s.renderEntry(entry)
	return true
}

func (s *Session) showHistory(ctx context.Context) {
	entries, err := s.services.List(ctx)
	if err != nil {
		s.log.Errorw("load history", "err", err)
		errorColor.Fprintf(s.out, "Could not load history: %v\n", err)
		return
	}
	s.renderHistory(entries)
}
