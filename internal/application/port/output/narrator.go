package output

// NarratorPort prints demo progress for a human audience. The scheduler flow
// narrates every step; implementations decide how loud to be.
type NarratorPort interface {
	Step(format string, args ...any)
	Detail(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	Failure(format string, args ...any)
}
