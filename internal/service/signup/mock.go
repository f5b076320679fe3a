package signup

import "context"

// Mock implements Service for unit tests. It records every submitted
// registration and can be primed to fail.
type Mock struct {
	Err         error
	Submissions []Registration
}

func (m *Mock) Submit(_ context.Context, reg Registration) error {
	m.Submissions = append(m.Submissions, reg)
	if m.Err != nil {
		return m.Err
	}
	return nil
}

var _ Service = (*Mock)(nil)
