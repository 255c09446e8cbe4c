package table

// IllegalActionError is returned when the requested action is not legal for the table state.
// It is safe to return in a response
type IllegalActionError string

func (e IllegalActionError) Error() string {
	return string(e)
}

// IllegalAmountError is returned when an amount violates a betting constraint.
// It is safe to return in a response
type IllegalAmountError string

func (e IllegalAmountError) Error() string {
	return string(e)
}
