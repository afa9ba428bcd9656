package statemachine

import (
	"context"
	"fmt"

	"github.com/bwsolucoes/carteira-api/internal/models"
	"github.com/looplab/fsm"
)

// ContractFSM wraps a contract with its state machine
type ContractFSM struct {
	contract *models.Contract
	fsm      *fsm.FSM
}

// NewContractFSM creates a new contract state machine
func NewContractFSM(contract *models.Contract) *ContractFSM {
	cffsm := &ContractFSM{
		contract: contract,
	}

	cffsm.fsm = fsm.NewFSM(
		contract.Status,
		fsm.Events{
			// ativo/inativo → cancelado
			{Name: "cancel", Src: []string{models.StatusActive, models.StatusInactive}, Dst: models.StatusCancelled},

			// inativo → ativo; cancelado is terminal
			{Name: "reactivate", Src: []string{models.StatusInactive}, Dst: models.StatusActive},
		},
		fsm.Callbacks{},
	)

	return cffsm
}

// Cancel transitions contract to cancelado state
func (c *ContractFSM) Cancel(ctx context.Context) error {
	if !c.contract.MayCancel() {
		return fmt.Errorf("contract cannot be cancelled in current state: %s", c.contract.Status)
	}

	if err := c.fsm.Event(ctx, "cancel"); err != nil {
		return fmt.Errorf("failed to cancel contract: %w", err)
	}

	c.contract.Status = c.fsm.Current()
	return nil
}

// Reactivate transitions contract from inativo back to ativo
func (c *ContractFSM) Reactivate(ctx context.Context) error {
	if !c.contract.MayReactivate() {
		return fmt.Errorf("contract cannot be reactivated in current state: %s", c.contract.Status)
	}

	if err := c.fsm.Event(ctx, "reactivate"); err != nil {
		return fmt.Errorf("failed to reactivate contract: %w", err)
	}

	c.contract.Status = c.fsm.Current()
	return nil
}

// Current returns the current state
func (c *ContractFSM) Current() string {
	return c.fsm.Current()
}

// Can checks if a transition is possible
func (c *ContractFSM) Can(event string) bool {
	return c.fsm.Can(event)
}
