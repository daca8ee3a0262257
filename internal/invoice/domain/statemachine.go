package domain

// Transition describes a legal status change and what it triggers.
type Transition struct {
	From Status
	To   Status

	// Notify marks transitions that dispatch the invoice email. The
	// transition completes only if the notification succeeds.
	Notify bool

	// Correction marks manual clerical corrections (sent/paid -> unpaid).
	Correction bool
}

// transitions is the full legal transition table, encoded as data so the
// legality check is a lookup rather than scattered conditionals.
//
// unpaid means "was billed but not settled": an invoice must first be sent
// or paid before it can be marked unpaid, so draft -> unpaid is absent.
// paid -> unpaid is allowed deliberately to support clerical correction.
var transitions = map[Status]map[Status]Transition{
	StatusDraft: {
		StatusSaved: {From: StatusDraft, To: StatusSaved},
		StatusSent:  {From: StatusDraft, To: StatusSent, Notify: true},
		StatusPaid:  {From: StatusDraft, To: StatusPaid},
	},
	StatusSaved: {
		StatusSent: {From: StatusSaved, To: StatusSent, Notify: true},
		StatusPaid: {From: StatusSaved, To: StatusPaid},
	},
	StatusSent: {
		StatusPaid:   {From: StatusSent, To: StatusPaid},
		StatusUnpaid: {From: StatusSent, To: StatusUnpaid, Correction: true},
	},
	StatusUnpaid: {
		StatusPaid: {From: StatusUnpaid, To: StatusPaid},
	},
	StatusPaid: {
		StatusUnpaid: {From: StatusPaid, To: StatusUnpaid, Correction: true},
	},
}

// NextTransition validates a requested status change against the table.
// Illegal requests return ErrIllegalTransition; no state is mutated here
// or anywhere on the failure path.
func NextTransition(from, to Status) (Transition, error) {
	if targets, ok := transitions[from]; ok {
		if tr, ok := targets[to]; ok {
			return tr, nil
		}
	}
	return Transition{}, ErrIllegalTransition
}
