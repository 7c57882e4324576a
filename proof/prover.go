package proof

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/gridlock-xyz/go-gridlock/board"
)

// Error types for the proof package.
var (
	// ErrNotASolution is returned when the claimed solution does not
	// actually solve the puzzle; no witness is built for it.
	ErrNotASolution = errors.New("proof: claimed solution does not solve the puzzle")
)

// CompiledCircuit holds the compiled solution circuit and its keys.
type CompiledCircuit struct {
	CS           constraint.ConstraintSystem
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
	Constraints  int
}

// Compile compiles the solution circuit to R1CS over BN254 and runs
// the Groth16 setup. Compilation is expensive; callers keep the result
// and reuse it across proofs.
func Compile() (*CompiledCircuit, error) {
	var circuit SolutionCircuit
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("circuit compilation failed: %w", err)
	}

	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	return &CompiledCircuit{
		CS:           cs,
		ProvingKey:   pk,
		VerifyingKey: vk,
		Constraints:  cs.GetNbConstraints(),
	}, nil
}

// NewAssignment builds a witness assignment from a puzzle and its
// claimed solution. The claim is checked outside the circuit first:
// the solution must be completely filled, valid, and must preserve
// every given. ErrNotASolution is returned otherwise.
func NewAssignment(puzzle, solution *board.Board) (*SolutionCircuit, error) {
	if !solution.IsSolved() {
		return nil, ErrNotASolution
	}

	givens := puzzle.Cells()
	solved := solution.Cells()
	for i, d := range givens {
		if d != board.Empty && solved[i] != d {
			return nil, fmt.Errorf("%w: given at cell %d changed", ErrNotASolution, i)
		}
	}

	var assignment SolutionCircuit
	for i := 0; i < board.Cells; i++ {
		assignment.Givens[i] = int(givens[i])
		assignment.Solution[i] = int(solved[i])
	}
	return &assignment, nil
}

// Prove produces a Groth16 proof that solution solves puzzle, plus the
// public witness a verifier needs.
func (cc *CompiledCircuit) Prove(puzzle, solution *board.Board) (groth16.Proof, witness.Witness, error) {
	assignment, err := NewAssignment(puzzle, solution)
	if err != nil {
		return nil, nil, err
	}

	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, fmt.Errorf("witness: %w", err)
	}

	prf, err := groth16.Prove(cc.CS, cc.ProvingKey, w)
	if err != nil {
		return nil, nil, fmt.Errorf("prove: %w", err)
	}

	public, err := w.Public()
	if err != nil {
		return nil, nil, fmt.Errorf("public witness: %w", err)
	}
	return prf, public, nil
}

// Verify checks a proof against its public witness.
func (cc *CompiledCircuit) Verify(prf groth16.Proof, public witness.Witness) error {
	if err := groth16.Verify(prf, cc.VerifyingKey, public); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	return nil
}

// PublicWitness builds the public witness for a puzzle alone, for
// verifiers that received only the proof and the puzzle text.
func PublicWitness(puzzle *board.Board) (witness.Witness, error) {
	var assignment SolutionCircuit
	givens := puzzle.Cells()
	for i := 0; i < board.Cells; i++ {
		assignment.Givens[i] = int(givens[i])
		// Solution values are private and absent from a public witness,
		// but the frontend still wants the fields populated.
		assignment.Solution[i] = 0
	}

	w, err := frontend.NewWitness(&assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("public witness: %w", err)
	}
	return w, nil
}
