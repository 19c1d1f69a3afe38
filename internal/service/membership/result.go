package membership

// SwitchResult reports the outcome of a batch switch request.
// Changed is false when the user was already a member of the requested
// batch; nothing is written in that case.
type SwitchResult struct {
	Changed bool
	Message string
}
