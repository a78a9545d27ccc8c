package vending

import "github.com/dmitrymomot/vendkit/pkg/statemachine"

// Machine states. Idle is both the initial state and the state reached after
// every completed cycle; there is no terminal state.
const (
	StateIdle         = statemachine.StringState("idle")
	StateCoinInserted = statemachine.StringState("coin_inserted")
	StateItemSelected = statemachine.StringState("item_selected")
	StateDispensing   = statemachine.StringState("dispensing")
	StateOutOfStock   = statemachine.StringState("out_of_stock")
	StateRefund       = statemachine.StringState("refund")
)

// Actions that drive transitions between machine states.
const (
	ActionInsertCoin          = statemachine.StringEvent("insert_coin")
	ActionSelectItem          = statemachine.StringEvent("select_item")
	ActionDispense            = statemachine.StringEvent("dispense")
	ActionOutOfStock          = statemachine.StringEvent("out_of_stock")
	ActionInsufficientBalance = statemachine.StringEvent("insufficient_balance")
	ActionRefund              = statemachine.StringEvent("refund")
	ActionSelectAnother       = statemachine.StringEvent("select_another")
	ActionComplete            = statemachine.StringEvent("complete")
)

// newStateMachine builds the machine's full transition table. Every legal
// (state, action) pair carries a bespoke Mealy output: the message depends on
// the state being left and the action taken, not on the state being entered.
func newStateMachine() statemachine.StateMachine {
	return statemachine.MustNew(StateIdle,
		statemachine.WithTransitions([]statemachine.TransitionDef{
			{From: StateIdle, To: StateCoinInserted, Event: ActionInsertCoin,
				Output: "Coin accepted. Ready for more coins or item selection."},

			{From: StateCoinInserted, To: StateCoinInserted, Event: ActionInsertCoin,
				Output: "Additional coin accepted."},
			{From: StateCoinInserted, To: StateItemSelected, Event: ActionSelectItem,
				Output: "Item selected. Checking availability..."},
			{From: StateCoinInserted, To: StateRefund, Event: ActionRefund,
				Output: "Processing refund..."},

			{From: StateItemSelected, To: StateDispensing, Event: ActionDispense,
				Output: "Dispensing item..."},
			{From: StateItemSelected, To: StateOutOfStock, Event: ActionOutOfStock,
				Output: "Item out of stock."},
			{From: StateItemSelected, To: StateCoinInserted, Event: ActionInsufficientBalance,
				Output: "Insufficient balance. Add more coins."},
			{From: StateItemSelected, To: StateRefund, Event: ActionRefund,
				Output: "Processing refund..."},

			{From: StateDispensing, To: StateIdle, Event: ActionComplete,
				Output: "Transaction complete. Enjoy!"},

			{From: StateOutOfStock, To: StateRefund, Event: ActionRefund,
				Output: "Processing refund..."},
			{From: StateOutOfStock, To: StateCoinInserted, Event: ActionSelectAnother,
				Output: "Select another item."},

			{From: StateRefund, To: StateIdle, Event: ActionComplete,
				Output: "Refund complete. Thank you!"},
		}),
	)
}
