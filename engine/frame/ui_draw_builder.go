package frame

// UIDrawSystemOption is a functional option for configuring a UIDrawSystem
// via NewUIDrawSystem.
type UIDrawSystemOption func(*uiDrawSystem)

// WithUIWorkers is an option builder that sets the number of workers used for
// parallel UI batch marshalling. The default is NumCPU-1 with a floor of 1.
// Values below 1 are ignored.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - UIDrawSystemOption: a function that applies the workers option
func WithUIWorkers(workers int) UIDrawSystemOption {
	return func(s *uiDrawSystem) {
		if workers >= 1 {
			s.workers = workers
		}
	}
}
