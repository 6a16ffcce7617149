package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
	// Responses, si no esta vacio, se consume en orden (una por llamada).
	Responses []string
	Prompts   []string
	calls     int
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		idx := m.calls
		if idx >= len(m.Responses) {
			idx = len(m.Responses) - 1
		}
		m.calls++
		return m.Responses[idx], nil
	}
	return m.Response, nil
}
