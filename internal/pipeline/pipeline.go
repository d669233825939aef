// Package pipeline orchestrates the assembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/lmcasm/internal/lmc"
	"github.com/retroenv/lmcasm/internal/loader"
	"github.com/retroenv/lmcasm/internal/options"
	"github.com/retroenv/lmcasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// SourceLoader loads the source text of the input file.
type SourceLoader interface {
	Load(opts options.Program) (string, error)
}

// Pipeline orchestrates the complete assembly workflow.
type Pipeline struct {
	logger *log.Logger
	loader SourceLoader
}

// New creates a new assembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute runs the complete pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) ([]lmc.Instruction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	return p.ExecuteWithSource(ctx, source, opts, w)
}

// ExecuteWithSource runs the pipeline with source text that is already in memory.
func (p *Pipeline) ExecuteWithSource(ctx context.Context, source string, opts options.Program,
	w io.Writer) ([]lmc.Instruction, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.printInfo(opts, source)

	instructions, err := lmc.Decode(source)
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	p.checkOperands(instructions)

	listing := writer.New(w, writer.Options{
		Codes:  !opts.NoCodes,
		Header: opts.Input,
	})
	if err := listing.Write(instructions); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}

	if !opts.Quiet {
		p.logger.Info("Decoded instructions",
			log.String("file", opts.Input),
			log.Int("count", len(instructions)),
		)
	}
	return instructions, nil
}

// checkOperands warns about operands given to instructions that do not use one
// and returns the indices of those instructions. The instructions are still accepted.
func (p *Pipeline) checkOperands(instructions []lmc.Instruction) []int {
	var flagged []int
	for i, ins := range instructions {
		if _, ok := ins.Operand(); !ok {
			continue
		}
		if lmc.IsNoOperandInstruction(ins.Name()) {
			p.logger.Warn("Operand ignored by instruction",
				log.Int("index", i),
				log.String("instruction", ins.String()),
			)
			flagged = append(flagged, i)
		}
	}
	return flagged
}

// printInfo prints information about the source being processed.
func (p *Pipeline) printInfo(opts options.Program, source string) {
	if opts.Quiet {
		return
	}
	p.logger.Debug("Processing LMC source",
		log.String("file", opts.Input),
		log.Int("size", len(source)),
	)
}
