/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package mets evaluates pediatric Metabolic Syndrome definitions. Each
// definition is plain data (component criteria plus an aggregation rule) and
// one Engine evaluates all of them.
package mets

import (
	"fmt"
	"sort"

	"github.com/humaidq/metskids/logging"
	"github.com/humaidq/metskids/obesity"
	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
	"github.com/humaidq/metskids/zscore"
)

var logger = logging.Logger(logging.SourceEngine)

// ComponentFlag is the flag of one component in a Result.
type ComponentFlag struct {
	Component Component
	Flag      Flag
}

// Result is the classification of one record under one definition.
type Result struct {
	Definition DefinitionID
	// Band is the label of the age band applied, empty when no band covers
	// the subject's age or the age is missing.
	Band       string
	Obesity    obesity.Category
	Verdict    Verdict
	Components []ComponentFlag
	Altered    int
	Missing    int
}

// Flag returns the flag of a component, FlagMissing if the definition does
// not report it.
func (r Result) Flag(c Component) Flag {
	for _, cf := range r.Components {
		if cf.Component == c {
			return cf.Flag
		}
	}

	return FlagMissing
}

// Engine evaluates definitions against a reference store. It holds no
// per-record state and is safe for concurrent use.
type Engine struct {
	store   *reference.Store
	zscores *zscore.Engine
	policy  MissingPolicy
	defs    map[DefinitionID]*Definition
}

// Option configures an Engine.
type Option func(*Engine) error

// WithMissingPolicy sets how missing components affect the verdict.
func WithMissingPolicy(p MissingPolicy) Option {
	return func(e *Engine) error {
		if p != PolicyDeterminable && p != PolicyCompleteCase {
			return fmt.Errorf("%w: %v", ErrUnknownMissingPolicy, p)
		}

		e.policy = p

		return nil
	}
}

// WithDefinition registers an additional definition, replacing a built-in one
// with the same id.
func WithDefinition(d *Definition) Option {
	return func(e *Engine) error {
		if err := d.Validate(); err != nil {
			return err
		}

		e.defs[d.ID] = d

		return nil
	}
}

// NewEngine returns an engine with the built-in definitions.
func NewEngine(store *reference.Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store:   store,
		zscores: zscore.NewEngine(store),
		policy:  PolicyDeterminable,
		defs:    make(map[DefinitionID]*Definition),
	}

	for _, d := range builtinDefinitions() {
		e.defs[d.ID] = d
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Policy returns the engine's missing-data policy.
func (e *Engine) Policy() MissingPolicy {
	return e.policy
}

// Definitions returns the ids the engine can evaluate, built-ins first.
func (e *Engine) Definitions() []DefinitionID {
	ids := make([]DefinitionID, 0, len(e.defs))
	for _, id := range Definitions() {
		if _, ok := e.defs[id]; ok {
			ids = append(ids, id)
		}
	}

	extra := make([]DefinitionID, 0)
	for id := range e.defs {
		if _, err := Lookup(id); err != nil {
			extra = append(extra, id)
		}
	}

	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ids, extra...)
}

// Definition returns the definition registered under id.
func (e *Engine) Definition(id DefinitionID) (*Definition, error) {
	d, ok := e.defs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, id)
	}

	return d, nil
}

// RequiredFields lists the input fields a registered definition needs.
func (e *Engine) RequiredFields(id DefinitionID) ([]string, error) {
	d, err := e.Definition(id)
	if err != nil {
		return nil, err
	}

	return requiredFields(d.Bands), nil
}

// Classify evaluates one definition for the record. Missing inputs never
// produce an error; only an unknown definition does.
func (e *Engine) Classify(rec *subject.Record, id DefinitionID) (Result, error) {
	d, err := e.Definition(id)
	if err != nil {
		return Result{}, err
	}

	rec.Derive()

	res := Result{
		Definition: d.ID,
		Obesity:    obesity.Classify(e.store, rec.BMI, rec.DecimalAge, rec.Sex),
		Components: make([]ComponentFlag, len(d.Components)),
	}

	for i, c := range d.Components {
		res.Components[i] = ComponentFlag{Component: c}
	}

	if rec.DecimalAge == nil {
		res.Missing = len(d.Components)
		return res, nil
	}

	band := d.band(*rec.DecimalAge)
	if band == nil {
		res.Missing = len(d.Components)
		return res, nil
	}

	res.Band = band.Label

	ctx := &evalContext{rec: rec, store: e.store, zscores: e.zscores}
	flags := make(map[Component]Flag, len(band.Criteria))

	for _, c := range band.Criteria {
		flags[c.Component] = evaluateCriterion(ctx, c)
	}

	for i := range res.Components {
		f := flags[res.Components[i].Component]
		res.Components[i].Flag = f

		switch f {
		case FlagAltered:
			res.Altered++
		case FlagMissing:
			res.Missing++
		}
	}

	res.Verdict = aggregate(band.Aggregation, res.Components, e.policy)

	logger.Debug("Classified record",
		"id", rec.ID, "definition", d.ID, "band", band.Label,
		"verdict", res.Verdict, "altered", res.Altered, "missing", res.Missing)

	return res, nil
}

// ClassifyAll evaluates every registered definition, in Definitions order.
func (e *Engine) ClassifyAll(rec *subject.Record) []Result {
	ids := e.Definitions()
	results := make([]Result, 0, len(ids))

	for _, id := range ids {
		res, err := e.Classify(rec, id)
		if err != nil {
			continue
		}

		results = append(results, res)
	}

	return results
}

func evaluateMeasure(ctx *evalContext, m Measure) Flag {
	value := ctx.rec.Value(m.Field)
	if value == nil {
		return FlagMissing
	}

	cutoff, ok := m.Cutoff.Resolve(ctx)
	if !ok {
		return evaluateBounded(ctx, m, *value)
	}

	if m.Direction.altered(*value, cutoff) {
		return FlagAltered
	}

	return FlagNormal
}

// evaluateBounded decides a measure whose cutoff could not be resolved when
// the value falls on the same side of every cutoff it could take.
func evaluateBounded(ctx *evalContext, m Measure, value float64) Flag {
	b, ok := m.Cutoff.(boundedCutoff)
	if !ok {
		return FlagMissing
	}

	lo, hi, ok := b.Bounds(ctx)
	if !ok {
		return FlagMissing
	}

	atLo, atHi := m.Direction.altered(value, lo), m.Direction.altered(value, hi)

	switch {
	case atLo && atHi:
		return FlagAltered
	case !atLo && !atHi:
		return FlagNormal
	default:
		return FlagMissing
	}
}

// evaluateCriterion ORs the measures: any altered wins, otherwise a single
// missing measure leaves the component missing.
func evaluateCriterion(ctx *evalContext, c Criterion) Flag {
	result := FlagNormal

	for _, m := range c.Measures {
		switch evaluateMeasure(ctx, m) {
		case FlagAltered:
			return FlagAltered
		case FlagMissing:
			result = FlagMissing
		}
	}

	return result
}

// aggregate turns component flags into a verdict.
func aggregate(agg Aggregation, flags []ComponentFlag, policy MissingPolicy) Verdict {
	var altered, missing int

	gate := FlagAltered

	for _, cf := range flags {
		if agg.Mandatory != "" && cf.Component == agg.Mandatory {
			gate = cf.Flag
			continue
		}

		switch cf.Flag {
		case FlagAltered:
			altered++
		case FlagMissing:
			missing++
		}
	}

	// A missing mandatory component never yields a verdict.
	if gate == FlagMissing {
		return VerdictMissing
	}

	if policy == PolicyCompleteCase && missing > 0 {
		return VerdictMissing
	}

	if gate == FlagNormal || agg.MonitorOnly {
		return VerdictNo
	}

	switch {
	case altered >= agg.MinAltered:
		return VerdictYes
	case altered+missing < agg.MinAltered:
		return VerdictNo
	default:
		return VerdictMissing
	}
}
