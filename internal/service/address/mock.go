package address

import "context"

// Mock implements Service for unit tests with canned addresses keyed by
// postal code. It also counts lookups so tests can assert that short or
// malformed codes never reach the network.
type Mock struct {
	Addresses map[string]*Address
	Err       error
	Calls     int
}

func (m *Mock) Lookup(_ context.Context, cep string) (*Address, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Addresses[cep]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

var _ Service = (*Mock)(nil)
