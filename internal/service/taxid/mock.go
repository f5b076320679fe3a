package taxid

import "context"

// Mock implements Service for unit tests with canned people keyed by CPF.
// Lookups are counted so tests can assert that short inputs never reach the
// network.
type Mock struct {
	People map[string]*Person
	Err    error
	Calls  int
}

func (m *Mock) Verify(_ context.Context, cpf string) (*Person, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	p, ok := m.People[cpf]
	if !ok {
		return &Person{}, nil
	}
	return p, nil
}

var _ Service = (*Mock)(nil)
