// Package modelfile reads and writes network definitions as YAML.
//
// A document lists variables, edges and tabular CPDs:
//
//	variables:
//	  - {name: Smoking, card: 2, states: [no, yes]}
//	  - {name: LungCancer, card: 2}
//	edges:
//	  - {from: Smoking, to: LungCancer}
//	cpds:
//	  - variable: Smoking
//	    values: [[0.7], [0.3]]
//	  - variable: LungCancer
//	    evidence: [Smoking]
//	    values: [[0.99, 0.1], [0.01, 0.9]]
//
// A CPD's card and evidence_card may be omitted; they default to the
// declared cardinalities of the variables involved. Unknown keys are rejected.
package modelfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// ErrDecode is returned when a document is not well-formed YAML or has unknown keys.
var ErrDecode = errors.New("modelfile: decode")

// Document is the YAML form of a network.
type Document struct {
	Variables []VariableSpec `yaml:"variables"`
	Edges     []EdgeSpec     `yaml:"edges,omitempty"`
	CPDs      []CPDSpec      `yaml:"cpds"`
}

// VariableSpec declares one variable.
type VariableSpec struct {
	Name   string   `yaml:"name"`
	Card   int      `yaml:"card"`
	States []string `yaml:"states,omitempty,flow"`
}

// EdgeSpec declares parent → child.
type EdgeSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// CPDSpec declares one tabular CPD. Values has Card rows; columns enumerate
// evidence states with the last evidence variable varying fastest.
type CPDSpec struct {
	Variable     string      `yaml:"variable"`
	Card         int         `yaml:"card,omitempty"`
	Evidence     []string    `yaml:"evidence,omitempty,flow"`
	EvidenceCard []int       `yaml:"evidence_card,omitempty,flow"`
	Values       [][]float64 `yaml:"values,flow"`
}

// Decode parses a document from r without building it.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &doc, nil
}

// Read decodes a document from r and builds a validated model from it.
func Read(r io.Reader) (*model.Model, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// Load reads and builds the model stored at path.
func Load(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Build converts the document into CPDs and hands everything to model.Build.
// CPD construction failures keep their cpd sentinel and are wrapped in
// model.ErrValidation.
func (d *Document) Build() (*model.Model, error) {
	cards := make(map[string]int, len(d.Variables))
	vars := make([]core.Variable, len(d.Variables))
	for i, v := range d.Variables {
		vars[i] = core.Variable{Name: v.Name, Card: v.Card, States: v.States}
		cards[v.Name] = v.Card
	}
	edges := make([]core.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = core.Edge{From: e.From, To: e.To}
	}

	tabs := make([]*cpd.Tabular, 0, len(d.CPDs))
	for _, c := range d.CPDs {
		t, err := c.tabular(cards)
		if err != nil {
			return nil, fmt.Errorf("%w: cpd %s: %w", model.ErrValidation, c.Variable, err)
		}
		tabs = append(tabs, t)
	}

	return model.Build(vars, edges, tabs)
}

// Graph builds only the structure, deferring cycle rejection so that cyclic
// documents can still be inspected with dfs.DetectCycles.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithoutCycleCheck())
	for _, v := range d.Variables {
		var opts []core.VariableOption
		if len(v.States) > 0 {
			opts = append(opts, core.WithStates(v.States...))
		}
		if err := g.AddVariable(v.Name, v.Card, opts...); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (c CPDSpec) tabular(cards map[string]int) (*cpd.Tabular, error) {
	card := c.Card
	if card == 0 {
		card = cards[c.Variable]
	}
	evCard := c.EvidenceCard
	if len(evCard) == 0 && len(c.Evidence) > 0 {
		evCard = make([]int, len(c.Evidence))
		for i, e := range c.Evidence {
			evCard[i] = cards[e]
		}
	}
	var opts []cpd.Option
	if len(c.Evidence) > 0 || len(evCard) > 0 {
		opts = append(opts, cpd.WithEvidence(c.Evidence, evCard))
	}

	return cpd.NewTabular(c.Variable, card, c.Values, opts...)
}

// FromModel captures a model as a document. Variables and CPDs follow the
// model's topological order; edges are sorted by (From, To).
func FromModel(m *model.Model) (*Document, error) {
	if err := m.Ready(); err != nil {
		return nil, err
	}
	doc := &Document{}
	for _, v := range m.Variables() {
		doc.Variables = append(doc.Variables, VariableSpec{Name: v.Name, Card: v.Card, States: v.States})
		c := m.CPD(v.Name)
		doc.CPDs = append(doc.CPDs, CPDSpec{
			Variable:     c.Variable(),
			Card:         c.Card(),
			Evidence:     c.Evidence(),
			EvidenceCard: c.EvidenceCard(),
			Values:       c.Values(),
		})
	}
	for _, e := range m.Edges() {
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To})
	}

	return doc, nil
}

// Write encodes m as YAML to w.
func Write(w io.Writer, m *model.Model) error {
	doc, err := FromModel(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}

	return enc.Close()
}

// Save writes m to path, replacing any existing file.
func Save(path string, m *model.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	if err := Write(f, m); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
