// Package bayesnet is the module root for discrete Bayesian networks:
// define a structure, attach tabular CPDs, validate, and draw synthetic
// observations by forward sampling.
//
// Layout:
//
//	core/       - Variable, Edge and the thread-safe acyclic Graph
//	dfs/        - topological order and cycle enumeration
//	matrix/     - dense float64 storage behind CPD tables
//	cpd/        - TabularCPD and the CPD Store
//	model/      - the Model Validator (Check, Build)
//	sampling/   - the Forward Sampler and sampled Table statistics
//	modelfile/  - YAML model files
//	diagnosis/  - Smoking → LungCancer → ShortnessOfBreath network
//	builder/    - synthetic networks for tests and benchmarks
//	cmd/bayesnet - command-line front end
//
// Quick start:
//
//	m, err := diagnosis.NewModel(diagnosis.Default())
//	if err != nil { /* handle */ }
//	seed := uint64(42)
//	tbl, err := sampling.Generate(m, 10000, &seed)
//	rate, _ := tbl.ConditionalRate("LungCancer", 1, "Smoking", 1) // ≈ 0.90
package bayesnet
